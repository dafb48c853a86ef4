package main

import (
	"log"

	"github.com/creatorcircle/internal/config"
	"github.com/creatorcircle/internal/content"
	"github.com/creatorcircle/internal/db"
	"github.com/creatorcircle/internal/router"
)

func main() {
	cfg := config.Load()

	// 加载静态内容集合，单个集合损坏时降级为空但不阻止启动
	store, err := content.Load(cfg.DataDir)
	if err != nil {
		log.Printf("content store loaded with degraded collections: %v", err)
	}

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg, store, db.DB)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
