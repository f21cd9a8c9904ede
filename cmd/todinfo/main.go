// Command todinfo loads one tag of Keck Array data and prints a summary
// of its configuration.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"kecktod"
	"kecktod/internal/config"
	"kecktod/internal/infrastructure"
)

func main() {
	tagName := flag.String("tag", "", "observation tag, e.g. 20150614C06_dk023")
	dir := flag.String("dir", "", "directory holding the tag's files (defaults to the configured data dir, or the tag name)")
	flag.Parse()

	if *tagName == "" {
		fmt.Fprintln(os.Stderr, "usage: todinfo -tag <tag> [-dir <dir>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	// -dir wins; otherwise the configured data dir prefixes the tag.
	tagDir := *dir
	if tagDir == "" && cfg.Paths.DataDir != "" {
		tagDir = filepath.Join(cfg.Paths.DataDir, *tagName)
	}

	logger.Info("loading tag",
		slog.String("tag", *tagName),
		slog.String("dir", tagDir))

	ds, err := kecktod.LoadWithLogger(*tagName, tagDir, logger)
	if err != nil {
		logger.Error("load failed", "error", err)
		os.Exit(1)
	}
	defer ds.Close()

	t := ds.Tag
	fmt.Printf("tag       %s\n", t.Raw)
	fmt.Printf("date      %04d-%02d-%02d\n", t.Year, t.Month, t.Day)
	fmt.Printf("scan set  %s\n", t.ScanSet)
	fmt.Printf("dk angle  %d deg\n", t.Boresight)
	fmt.Printf("tod file  %s\n", ds.TOD.Filename())
	fmt.Printf("detectors %d across %d receivers\n", ds.FocalPlane.Len(), ds.FocalPlane.Receivers())
	for rx := 0; rx < ds.FocalPlane.Receivers(); rx++ {
		rows := ds.FocalPlane.Receiver(rx)
		if len(rows) == 0 {
			continue
		}
		fmt.Printf("  rx %d: %d rows, drum angle %.1f deg\n", rx, len(rows), rows[0].DrumAngle)
	}
}
