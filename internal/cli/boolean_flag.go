package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName              = "bool"
	booleanFlagTrueLiteral           = "true"
	booleanFlagAcceptedValuesListing = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueFormat    = "invalid boolean value %q for --%s; accepted values: %s"
	longFlagPrefix                   = "--"
	flagValueAssignment              = "="
	endOfFlagsMarker                 = "--"
	shortFlagPrefix                  = "-"
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// booleanFlagValue accepts the literals above so that --includeIndexPage no and
// --includeIndexPage=off both work.
type booleanFlagValue struct {
	target  *bool
	flagKey string
}

func (value *booleanFlagValue) Set(input string) error {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = booleanFlagTrueLiteral
	}
	parsed, ok := booleanFlagLiterals[normalized]
	if !ok {
		return fmt.Errorf(booleanFlagInvalidValueFormat, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return booleanFlagTrueLiteral
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&booleanFlagValue{target: target, flagKey: name}, name, usage)
	if lookup := flagSet.Lookup(name); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments rewrites "--flag value" into "--flag=value" for boolean flags when
// value is a boolean literal, since pflag only binds a separate value for non-boolean flags.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		currentArgument := arguments[index]
		if currentArgument == endOfFlagsMarker {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if literalArgument, consumed := joinBooleanLiteral(currentArgument, arguments[index+1:], booleanFlags); consumed {
			normalized = append(normalized, literalArgument)
			index++
			continue
		}
		normalized = append(normalized, currentArgument)
	}
	return normalized
}

func joinBooleanLiteral(currentArgument string, remaining []string, booleanFlags map[string]struct{}) (string, bool) {
	if !strings.HasPrefix(currentArgument, longFlagPrefix) || strings.Contains(currentArgument, flagValueAssignment) || len(remaining) == 0 {
		return "", false
	}
	flagName := strings.TrimPrefix(currentArgument, longFlagPrefix)
	if _, isBoolean := booleanFlags[flagName]; !isBoolean {
		return "", false
	}
	nextArgument := remaining[0]
	if strings.HasPrefix(nextArgument, shortFlagPrefix) {
		return "", false
	}
	if _, valid := booleanFlagLiterals[strings.ToLower(strings.TrimSpace(nextArgument))]; !valid {
		return "", false
	}
	return currentArgument + flagValueAssignment + nextArgument, true
}

func collectBooleanFlagNames(command *cobra.Command, target map[string]struct{}) {
	visit := func(flagSet *pflag.FlagSet) {
		flagSet.VisitAll(func(flag *pflag.Flag) {
			if flag.Value != nil && flag.Value.Type() == booleanFlagTypeName {
				target[flag.Name] = struct{}{}
			}
		})
	}
	visit(command.PersistentFlags())
	visit(command.Flags())
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, target)
	}
}
