// Package config loads runtime configuration for the docproc CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config; JSON or YAML,
//     chosen by file extension (see parseFile).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      default request timeout (seconds)
//	-u int      upload timeout (seconds)
//	-p int      task poll interval (seconds)
//	-o string   directory downloads are saved into
//	-s string   session id (generated when empty)
//
// # File schema
//
// Durations decode via timex.Duration, so values can be strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000/api",
//	  "request_timeout": "30s",
//	  "upload_timeout": "60s",
//	  "poll_interval": "2s",
//	  "output_dir": "downloads",
//	  "session_id": ""
//	}
package config
