package vcp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

// ErrInvalidCode is returned (wrapped in a model.CLIError) when a feature
// identifier matches none of the resolution rules.
var ErrInvalidCode = errors.New("invalid code")

// Rule is one step of the resolution chain. Match returns the code and
// true when the rule applies to the feature.
type Rule struct {
	Name  string
	Match func(feature string) (string, bool)
}

// KnownFeatures maps case-sensitive feature names to the code string
// passed to ddcutil.
//
// The values are emitted verbatim. "10" happens to equal VCP 0x10
// (brightness); check the VCP code table before adding entries, since
// a decimal-looking value here is sent as hex.
var KnownFeatures = map[string]string{
	"brightness": "10",
	"contrast":   "12",
}

// DefaultRules is the resolution chain in priority order.
var DefaultRules = []Rule{
	{Name: "hex", Match: matchShortHex},
	{Name: "0x-hex", Match: matchPrefixedHex},
	{Name: "decimal", Match: matchDecimal},
	{Name: "name", Match: matchKnownName},
}

// Resolver resolves feature identifiers using an ordered rule list.
type Resolver struct {
	rules []Rule
}

// NewResolver creates a Resolver. With no rules it uses DefaultRules.
func NewResolver(rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Resolver{rules: rules}
}

// Resolve returns the code for feature together with the name of the
// rule that produced it. It fails with ErrInvalidCode when no rule matches.
func (r *Resolver) Resolve(feature string) (code string, rule string, err error) {
	for _, rl := range r.rules {
		if c, ok := rl.Match(feature); ok {
			return c, rl.Name, nil
		}
	}
	return "", "", model.WrapCLIError(model.ExitInvalidCode,
		fmt.Sprintf("cannot resolve feature %q", feature), ErrInvalidCode)
}

// Resolve resolves feature with the default rule chain.
func Resolve(feature string) (string, error) {
	code, _, err := NewResolver().Resolve(feature)
	return code, err
}

func matchShortHex(feature string) (string, bool) {
	if len(feature) < 1 || len(feature) > 2 || !isHex(feature) {
		return "", false
	}
	return strings.ToUpper(feature), true
}

func matchPrefixedHex(feature string) (string, bool) {
	rest, ok := strings.CutPrefix(feature, "0x")
	if !ok || rest == "" || !isHex(rest) {
		return "", false
	}
	return strings.ToUpper(rest), true
}

func matchDecimal(feature string) (string, bool) {
	// A single leading '+' is accepted, as for any unsigned decimal parse.
	digits := strings.TrimPrefix(feature, "+")
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%02X", n), true
}

func matchKnownName(feature string) (string, bool) {
	code, ok := KnownFeatures[feature]
	return code, ok
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
