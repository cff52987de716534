package renderdoc

var end = "\x00"
var endChar byte = '\x00'

// safeString guarantees the string carries the null terminator the
// native side expects before its backing bytes are handed over.
func safeString(s string) string {
	if len(s) == 0 {
		return end
	}
	if s[len(s)-1] != endChar {
		return s + end
	}
	return s
}
