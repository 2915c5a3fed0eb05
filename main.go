package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zane16/Foodies-Web-sub000/configs"
	"github.com/Zane16/Foodies-Web-sub000/middlewares"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedSuperAdmin(cfg); err != nil {
		log.Fatalf("seed superadmin failed: %v", err)
	}
	if err := configs.SeedOrganizations(); err != nil {
		log.Fatalf("seed organizations failed: %v", err)
	}

	if n, err := repository.NewUserRepository(db).ExpireStaleInvites(time.Now()); err != nil {
		log.Printf("invite sweep failed: %v", err)
	} else if n > 0 {
		log.Printf("cleared %d expired invite tokens", n)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded assets (logos, headers, documents)
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
