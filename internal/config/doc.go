// Package config provides configuration parsing for oxd tooling.
//
// The configuration is stored in oxd.json at the project root. This
// package handles loading, saving, environment overrides and validation.
//
// # Configuration File Structure
//
//	{
//	  "name": "oxd",
//	  "docs": {
//	    "host": "localhost",
//	    "port": 6006,
//	    "title": "OXD Components",
//	    "live": true
//	  },
//	  "stories": {
//	    "dirs": ["stories"]
//	  },
//	  "snapshot": {
//	    "dir": "__snapshots__",
//	    "store": "",
//	    "ci": false
//	  },
//	  "s3": {
//	    "bucket": "oxd-docs",
//	    "prefix": "storybook/",
//	    "region": "us-east-1"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "oxd"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  }
//	}
//
// Every field can be overridden with an OXD_* environment variable, e.g.
// OXD_DOCS_PORT=7000 or OXD_S3_BUCKET=my-bucket.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Docs:", cfg.DocsURL())
package config
