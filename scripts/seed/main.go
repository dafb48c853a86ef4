package main

import (
	"fmt"
	"log"

	"github.com/creatorcircle/internal/config"
	"github.com/creatorcircle/internal/db"
	"github.com/creatorcircle/internal/service"
)

// 社区测试数据生成器
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	members := service.NewMemberService(db.DB)
	submissions := service.NewSubmissionService(db.DB)
	boosts := service.NewBoostService(db.DB)

	var count int64
	db.DB.Model(&db.Profile{}).Count(&count)
	if count > 0 {
		fmt.Println("成员已存在，跳过创建")
		return
	}

	zoey, err := members.Register(service.RegisterInput{Username: "zoey", Password: "zoey1234", Bio: "写作教练，专注开头设计"})
	if err != nil {
		log.Fatal("创建成员失败:", err)
	}
	marco, err := members.Register(service.RegisterInput{Username: "marco", Password: "marco1234", Bio: "Indie hacker building in public"})
	if err != nil {
		log.Fatal("创建成员失败:", err)
	}

	if _, err := submissions.CreateArticle(zoey.ID, service.ArticleInput{
		Title:   "冲突开头的三种写法",
		Summary: "开头决定停留时长",
		Content: "## 冲突\n先抛出反直觉结论，再用一个具体场景把读者拉进来。",
	}); err != nil {
		log.Fatal("创建投稿失败:", err)
	}

	if _, err := submissions.CreateHighlightTweet(zoey.ID, "https://x.com/zoeywrites/status/1001", "当周收藏量最高"); err != nil {
		log.Fatal("创建高光推文失败:", err)
	}

	request, err := boosts.CreateRequest(marco.ID, service.BoostInput{
		Title:       "新产品发布帖求助推",
		Description: "长推文拆解从 0 到首批付费用户",
		Link:        "https://x.com/marcoships/status/2001",
	})
	if err != nil {
		log.Fatal("创建互推求助失败:", err)
	}
	if err := boosts.Support(request.ID, zoey.ID); err != nil {
		log.Fatal("记录助推失败:", err)
	}

	fmt.Println("测试数据生成完成！")
	fmt.Println("成员: zoey (密码: zoey1234), marco (密码: marco1234)")
}
