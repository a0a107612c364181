// Package config loads musaed's TOML configuration.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/musaed/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Apply MUSAED_API_BASE and MUSAED_REQUEST_TIMEOUT from the environment
//
// # Defaults
//
//   - api_base: http://127.0.0.1:5000
//   - request_timeout: 10 (seconds)
//   - health_interval: 3 (seconds)
//   - log_dir: ~/.local/share/musaed (log file musaed.log)
//
// # TOML Format
//
//	api_base = "http://127.0.0.1:5000"
//	request_timeout = 10
//	health_interval = 3
//	log_dir = "~/.local/share/musaed"
//
//	[admission]
//	deny = ["اتروش", "انام"]
//	allow = ["جواز", "تجديد"]
//	travel = ["سافر"]
//
//	[[favorites]]
//	id = "payments"
//	title = "المدفوعات الحكومية"
//	description = "سداد الرسوم والمخالفات الحكومية"
//	target = "payments"
//
// Admission lists replace the built-in list of the same name when non-empty.
// A [[favorites]] table replaces the built-in catalog; every entry needs a
// target.
//
// # Path Expansion
//
// Paths starting with "~" are expanded to the user's home directory.
package config
