package main

import (
	"flag"
	"log"

	"github.com/mogaika/offmesh/config"
	"github.com/mogaika/offmesh/status"
	"github.com/mogaika/offmesh/web"
)

func main() {
	var cfgPath, addr, webPath, encoding string
	flag.StringVar(&cfgPath, "config", config.DEFAULT_FILE_NAME, "Path to yaml config")
	flag.StringVar(&addr, "i", "", "Address of server, overrides config")
	flag.StringVar(&webPath, "web", "", "Path to static web files, overrides config")
	flag.StringVar(&encoding, "encoding", "", "Source text encoding, overrides config")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if webPath != "" {
		cfg.WebPath = webPath
	}
	if encoding != "" {
		cfg.Encoding = encoding
	}
	if err := config.Apply(cfg); err != nil {
		log.Fatal(err)
	}

	if err := web.StartServer(cfg, status.NewHub()); err != nil {
		log.Fatal(err)
	}
}
