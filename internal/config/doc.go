// Package config provides configuration parsing for componentx projects.
//
// The configuration is stored in componentx.json (or componentx.yaml) at
// the project root.
//
// # Configuration File Structure
//
//	{
//	  "styles": {
//	    "dir": "styles",
//	    "output": "dist/components.css"
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "watch": true
//	  },
//	  "publish": {
//	    "bucket": "my-assets",
//	    "prefix": "css/",
//	    "region": "eu-west-1"
//	  },
//	  "logLevel": "info"
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Addr:", cfg.Addr())
package config
