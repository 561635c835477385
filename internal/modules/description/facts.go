package description

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"meetspace/internal/domain"

	"github.com/divan/num2words"
)

// MissingFacts checks that every required room fact appears literally in the
// generated text and returns the names of the fields that do not. Name, type,
// building and floor are matched as case-insensitive substrings. Capacity may
// appear as digits ("8") or as its cardinal spelling ("eight"); both forms are
// matched on word boundaries so that "18" never satisfies a check for "8".
func MissingFacts(text string, room *domain.Room) []string {
	var missing []string
	lower := strings.ToLower(text)

	contains := func(field, val string) {
		if !strings.Contains(lower, strings.ToLower(val)) {
			missing = append(missing, field)
		}
	}

	contains("name", room.Name)
	contains("room_type", room.RoomType)
	if !capacityMentioned(text, room.Capacity) {
		missing = append(missing, "capacity")
	}
	contains("building", room.Building)
	contains("floor", room.Floor)

	return missing
}

// capacityPatterns caches the compiled pattern per capacity; the retry loop
// re-validates the same room several times per save.
var capacityPatterns sync.Map // int -> *regexp.Regexp

func capacityMentioned(text string, capacity int) bool {
	return capacityPattern(capacity).MatchString(text)
}

func capacityPattern(capacity int) *regexp.Regexp {
	if cached, ok := capacityPatterns.Load(capacity); ok {
		return cached.(*regexp.Regexp)
	}

	word := num2words.Convert(capacity)
	re := regexp.MustCompile(fmt.Sprintf(`(?i)\b(?:%d|%s)\b`, capacity, regexp.QuoteMeta(word)))
	cached, _ := capacityPatterns.LoadOrStore(capacity, re)
	return cached.(*regexp.Regexp)
}
