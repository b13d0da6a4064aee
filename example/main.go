// FILE: lixenwraith/confstore/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/confstore"
)

// DatabaseSettings is filled from every option under "Database.".
type DatabaseSettings struct {
	Host     string        `conf:"Host"`
	Port     int           `conf:"Port"`
	Timeout  time.Duration `conf:"Timeout"`
	ReadOnly bool          `conf:"ReadOnly"`
	Replicas []string      `conf:"Replicas"`
}

// WorldService only sees the read surface of the store.
type WorldService struct {
	cfg confstore.Getter
}

func (w *WorldService) Describe() string {
	return fmt.Sprintf("port=%d players=%d motd=%q pvp=%t",
		w.cfg.Int("WorldServerPort", 8085),
		w.cfg.Int64("PlayerLimit", 100),
		w.cfg.String("Motd", "Welcome"),
		w.cfg.Bool("PvP.Enabled", false))
}

func main() {
	dir, err := os.MkdirTemp("", "confstore-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "worldserver.conf")
	writeExample(base+confstore.DistSuffix, `
###################################
# World server defaults
###################################
[worldserver]
WorldServerPort = 8085
PlayerLimit     = 1000
Motd            = "Welcome to the realm"   # shown on login
PvP.Enabled     = 0

Database.Host     = 127.0.0.1
Database.Port     = 3306
Database.Timeout  = 10s
Database.ReadOnly = no
Database.Replicas = "db2,db3"
`)
	writeExample(base, "PvP.Enabled = 1\nPlayerLimit = 250\n")

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The composition root owns the store and hands it to consumers
	store, err := confstore.NewBuilder().
		WithLogger(logger).
		WithAppConfig(base).
		WithAdditionalFiles(base).
		WithValidator(confstore.Require("WorldServerPort", "Database.Host")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	world := &WorldService{cfg: store}
	fmt.Println(world.Describe())

	var db DatabaseSettings
	if err := store.Decode("Database.", &db); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("database: %+v\n", db)

	// Logged as missing, default returned
	fmt.Println("rate:", confstore.Option(store, "Rate.XP.Kill", float32(1)))

	if err := store.Export(os.Stdout, confstore.FormatTOML); err != nil {
		log.Fatal(err)
	}
}

func writeExample(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}
}
