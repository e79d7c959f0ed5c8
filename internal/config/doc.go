// Package config provides configuration management for the xdg-dirs CLI.
//
// # Configuration File
//
// The default configuration file location is
// <XDG_CONFIG_HOME>/xdg-dirs/config.yaml. The file uses YAML format:
//
//	app: emacs
//	directories:
//	  cache_home: /tmp/c     # optional base overrides
//	app_dirs:
//	  data: /srv/emacs-data  # optional per-domain overrides
//	lookup:
//	  command: xdg-user-dir
//	  timeout: 3s
//
// Environment variables prefixed with XDG_DIRS_ override file values, so
// XDG_DIRS_APP=vim changes the namespace without editing the file.
//
// # Usage
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	resolver, err := cfg.BuildResolver()
//
// [Config.BuildResolver] turns the loaded values into a ready
// [xdgdirs.Resolver]; [Config.Provider] builds the user-directory lookup
// chain.
package config
