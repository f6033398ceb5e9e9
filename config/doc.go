// Package config owns the robottelo properties document: the recognized
// sections and keys, their types and defaults, and the loader and
// validator the tooling is built on.
//
// The file format is INI-style sectioned key/value text. Keys use dotted
// names within their section (server.ssh.key_private), # introduces a
// comment, and values are plain UTF-8 strings that may be empty.
//
// Basic usage:
//
//	doc, err := config.Load("robottelo.properties")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if errs := doc.Validate(config.ValidateOptions{}); len(errs) > 0 {
//	    for _, e := range errs {
//	        log.Printf("validation error: %s", e)
//	    }
//	}
//
//	cfg, err := doc.Snapshot()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.BaseURL())
//
// Resolution order for every recognized key is: ROBOTTELO_* environment
// variable, then the file value, then the documented default when the key
// is absent or empty. The {server_hostname} placeholder in the docker
// internal_url is replaced with main server.hostname when that is set.
//
// The Document keeps the parsed file intact, so loading a file and saving
// it again preserves every key, value and comment.
package config
