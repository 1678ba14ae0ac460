// Package hcl implements config.Loader for settings files written in HCL.
//
// Expressions in a settings file are evaluated with an `env` object holding
// the process environment and a small set of string and collection
// functions, so a file can say `user_agent = "l10n-bot/${env.BOT_VERSION}"`.
package hcl
