// Package config loads rolling text settings from TOML or YAML files.
//
// A file only needs the keys it changes; everything else keeps the value
// from [Default]:
//
//	strategy = "carry-bit"
//	pools = ["digits", "$€£"]
//	duration = "1.2s"
//	easing = "spring"
//
//	[server]
//	addr = ":9000"
//
// Pool entries named "digits", "alphabet" or "ALPHABET" expand to the
// matching preset. [Config.Manager] and [Config.Player] turn a validated
// configuration into ready-to-use animation components.
package config
