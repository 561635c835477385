package description

import (
	"fmt"
	"strings"

	"meetspace/internal/domain"
)

// BuildPrompt maps a room snapshot to the generation instruction. Deterministic:
// identical rooms produce identical prompts.
func BuildPrompt(room *domain.Room) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a brief and easy to understand description of a %s named %q.\n\n",
		room.RoomType, room.Name)
	b.WriteString("The description must clearly mention:\n")
	fmt.Fprintf(&b, "- The room seats exactly %d people.\n", room.Capacity)
	fmt.Fprintf(&b, "- The room is located on floor %s of %s.\n", room.Floor, room.Building)
	fmt.Fprintf(&b, "- The room is currently %s.\n", room.Status)
	fmt.Fprintf(&b, "- The room includes: %s.\n", strings.Join(room.Equipment, ", "))
	b.WriteString("\nUse warm language and not too much informal, but make sure these facts appear explicitly.")

	return b.String()
}
