// Command fltube is a terminal front-end for browsing, playing and
// downloading videos through the external yt-dlp extractor.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FacundoAdorno/FLTube/internal/catalog"
	"github.com/FacundoAdorno/FLTube/internal/config"
	"github.com/FacundoAdorno/FLTube/internal/logging"
	"github.com/FacundoAdorno/FLTube/internal/netcheck"
	"github.com/FacundoAdorno/FLTube/internal/session"
	"github.com/FacundoAdorno/FLTube/internal/status"
	"github.com/FacundoAdorno/FLTube/internal/tui"
	"github.com/FacundoAdorno/FLTube/internal/ytdlp"
)

const (
	programName = "FLTube"
	version     = "0.2.2"

	userConfigRelPath = ".config/fltube.conf"
	systemConfigPath  = "/etc/fltube.conf"
	userdataFileName  = "userdata.txt"
)

// catalogVersion encodes the program version for the catalog header:
// "0.2.2" becomes 22.
func catalogVersion() int {
	n, _ := strconv.Atoi(strings.ReplaceAll(version, ".", ""))
	return n
}

type cliOptions struct {
	configPath  string
	debug       bool
	showHelp    bool
	showVersion bool
}

// parseArgs reads the single-token option forms. An unknown option or a
// --config= with no value is an invalid command parameter.
func parseArgs(args []string) (cliOptions, status.Code) {
	var opts cliOptions
	for _, arg := range args {
		switch {
		case arg == "--help":
			opts.showHelp = true
		case arg == "--version":
			opts.showVersion = true
		case arg == "--debug":
			opts.debug = true
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
			if opts.configPath == "" {
				return opts, status.InvalidCmdParam
			}
		default:
			return opts, status.InvalidCmdParam
		}
	}
	return opts, status.OK
}

func printUsage() {
	fmt.Printf(`%s %s

Usage: fltube [OPTIONS]

Options:
  --config=PATH   use PATH as the configuration file
  --debug         enable debug logging
  --help          show this help and exit
  --version       show the program version and exit
`, programName, version)
}

// defaultConfigPath prefers the user-level file, then the system one.
func defaultConfigPath(home string) string {
	userPath := filepath.Join(home, userConfigRelPath)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return systemConfigPath
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, st := parseArgs(args)
	if st != status.OK {
		fmt.Fprintf(os.Stderr, "invalid command line option, try --help\n")
		return st.ExitCode()
	}
	if opts.showHelp {
		printUsage()
		return status.OK.ExitCode()
	}
	if opts.showVersion {
		fmt.Printf("%s %s\n", programName, version)
		return status.OK.ExitCode()
	}

	log := logging.NewTerminal(opts.debug)
	home, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("cannot resolve the user home directory: %v", err)
		return status.GeneralFailure.ExitCode()
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = defaultConfigPath(home)
	}
	cfg := config.Load(configPath, log)

	ctx := context.Background()
	if !cfg.BoolProperty(config.PropAvoidInitialChecks, false) {
		if !ytdlp.Installed(ctx, nil) {
			log.Errorf("yt-dlp was not found on PATH, install it and retry")
			return status.GeneralFailure.ExitCode()
		}
		if !netcheck.Online(nil) {
			log.Errorf("cannot reach the video platform, check your network connection")
			return status.GeneralFailure.ExitCode()
		}
	}

	resourcesDir := cfg.Property(config.PropResourcesPath, filepath.Join(home, ".local", "share", "fltube"))
	if err := os.MkdirAll(resourcesDir, 0o755); err != nil {
		log.Errorf("cannot create the resources directory '%s': %v", resourcesDir, err)
		return status.GeneralFailure.ExitCode()
	}
	cat := catalog.Open(filepath.Join(resourcesDir, userdataFileName), catalogVersion(), log)

	player := ytdlp.NewPlayer(
		cfg.Property(config.PropStreamPlayerPath, "mpv"),
		cfg.Property(config.PropStreamPlayerParams, ""),
		cfg.Property(config.PropStreamPlayerLiveExtra, ""),
	)
	client := ytdlp.New(ytdlp.Options{
		Resolution:        ytdlp.ParseResolution(cfg.IntProperty(config.PropStreamResolution, int(ytdlp.DefaultResolution))),
		Player:            player,
		AlternativeStream: cfg.BoolProperty(config.PropAlternativeStream, false),
		Logger:            log,
	})

	thumbnailDir := filepath.Join(resourcesDir, "thumbnails")
	if err := os.MkdirAll(thumbnailDir, 0o755); err != nil {
		log.Warnf("cannot create the thumbnail cache directory: %v", err)
		thumbnailDir = ""
	}

	uiErr := tui.Run(tui.Options{
		Config:       cfg,
		Catalog:      cat,
		Client:       client,
		Session:      session.New(),
		Logger:       log,
		DownloadDir:  cfg.Property("DOWNLOAD_PATH", filepath.Join(home, "Downloads")),
		ThumbnailDir: thumbnailDir,
	})
	if err := cat.Persist(); err != nil {
		log.Errorf("cannot persist the video catalog: %v", err)
		return status.GeneralFailure.ExitCode()
	}
	if uiErr != nil {
		log.Errorf("interface error: %v", uiErr)
		return status.GeneralFailure.ExitCode()
	}
	return status.OK.ExitCode()
}
