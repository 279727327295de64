// Package validation provides the request and domain validation used across
// the application.
//
// Two flavors live here. RuleSet is a data-driven table of per-field checks
// with a fixed message catalog; entity validators are declared once per module
// and evaluated without short-circuiting so a single call reports every
// violated field. StructValidator wraps go-playground/validator v10 with
// English translations and is used for tag-based struct checks such as module
// dependency wiring.
package validation
