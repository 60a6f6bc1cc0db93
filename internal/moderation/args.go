package moderation

import (
	"strconv"
	"strings"
)

// ParseTwoIDs extracts the buyer and seller ids from a command such as
// "/startSavdo 111 222". The text must hold exactly the command and two
// base-10 integers.
func ParseTwoIDs(text string) (buyer, seller int64, ok bool) {
	parts := strings.Fields(text)
	if len(parts) != 3 {
		return 0, 0, false
	}

	buyer, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	seller, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return buyer, seller, true
}
