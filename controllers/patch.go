package controllers

import (
	"github.com/gin-gonic/gin"
)

// bindPatch decodes a partial-update body. A malformed or missing body
// degrades to an empty patch rather than failing the request.
func bindPatch(c *gin.Context) map[string]any {
	body := map[string]any{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return map[string]any{}
	}
	return body
}

func patchString(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

func patchBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// patchInt coerces a JSON number; anything else becomes 0, matching
// Number() coercion on the client side.
func patchInt(v any) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return 0
}

// patchRef coerces an optional entity reference: null clears the
// column, a number links it.
func patchRef(v any) any {
	if f, ok := v.(float64); ok {
		return uint(f)
	}
	return nil
}
