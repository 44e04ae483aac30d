package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Query    bool
	Poke     bool
	Patchset bool
}

var d *debug

func init() {
	d = &debug{}
	d.Query = boolEnv("XMLKIT_DEBUG_QUERY")
	d.Poke = boolEnv("XMLKIT_DEBUG_POKE")
	d.Patchset = boolEnv("XMLKIT_DEBUG_PATCHSET")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Query() bool {
	return d.Query
}
func Poke() bool {
	return d.Poke
}
func Patchset() bool {
	return d.Patchset
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
