package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/SRSager/bucks-county-fence/config"
	"github.com/SRSager/bucks-county-fence/controllers"
	"github.com/SRSager/bucks-county-fence/database"
	"github.com/SRSager/bucks-county-fence/form"
	"github.com/SRSager/bucks-county-fence/mailer"
	"github.com/SRSager/bucks-county-fence/routes"
)

func main() {
	cfg := config.Load()

	var storage form.Storage
	if cfg.DatabaseURL != "" {
		database.Connect(cfg.DatabaseURL)
		database.EnsureSchema()
		storage = database.NewSessionStore(database.Pool)
	} else {
		log.Printf("DATABASE_URL not set; form sessions held in memory")
		storage = form.NewMemoryStorage()
	}

	svc := mailer.NewService(mailer.NewSender(cfg))
	if !svc.Configured() {
		log.Printf("no mail credentials; lead delivery runs in development mode")
	}
	forms := controllers.NewFormRegistry(storage)

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, svc, forms)
	log.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
