package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSize parses "WxH" with positive dimensions.
func parseSize(v string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(v), "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", v)
	}
	return w, h, nil
}
