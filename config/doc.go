// Package config loads prompt-fitter configuration from YAML or TOML files.
//
// A configuration file names the tokenizer model, the record token budget,
// and the priority groups that drive record fitting:
//
//	model: azure/gpt-4o
//	max_tokens: 4000
//	priority_groups:
//	  - [title, body]
//	  - [metadata]
//
// # Loading
//
//	cfg, err := config.Load("fitter.yaml")
//
// The format is chosen by extension (.yaml, .yml, .toml). Fields absent
// from the file keep their Default() values.
//
// # Hot Reload
//
// Watch reloads the file whenever it changes:
//
//	for cfg := range config.Watch(ctx, "fitter.yaml") {
//	    apply(cfg)
//	}
//
// # Schema
//
// Schema exports a JSON schema for the configuration surface, for editor
// validation:
//
//	data, _ := json.MarshalIndent(config.Schema(), "", "  ")
package config
