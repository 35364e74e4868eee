package markdown

import (
	"bytes"
	"strings"

	"github.com/rogersnm/todomd/internal/model"
)

const (
	pendingPrefix = "- [ ]"
	donePrefix    = "- [x]"
)

// Parse converts the todo file text into its ordered spaces.
//
// The scan keeps one space accumulator in flight, starting with an implicit
// "Default" so task lines before the first [[...]] header land there. A
// leading Default with no todos is never emitted. Lines that are neither a
// header nor a task line (blanks, commentary, a "[[" with no closing "]]")
// are ignored rather than rejected, and a task whose description is empty
// after tag stripping is still kept: dropping it would silently lose data
// on the next save.
func Parse(content string) []model.Space {
	var spaces []model.Space
	current := model.Space{Name: model.DefaultSpace}

	flush := func() {
		if len(current.Items) > 0 || current.Name != model.DefaultSpace {
			spaces = append(spaces, current)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]"):
			flush()
			name := strings.TrimSuffix(strings.TrimPrefix(trimmed, "[["), "]]")
			current = model.Space{Name: name}
		case strings.HasPrefix(trimmed, pendingPrefix), strings.HasPrefix(trimmed, donePrefix):
			done := strings.HasPrefix(trimmed, donePrefix)
			rest := strings.TrimPrefix(trimmed[len(pendingPrefix):], " ")
			current.Items = append(current.Items, model.Item{
				Text:     model.StripTags(rest),
				Done:     done,
				Priority: model.PriorityFromLine(rest),
			})
		}
	}
	flush()
	if len(spaces) == 0 {
		// A file with no headers and no todos is still a store with its
		// implicit Default space, not a store with no spaces.
		spaces = []model.Space{{Name: model.DefaultSpace}}
	}
	return spaces
}

// Format serializes spaces back into the todo file text. It is the
// round-trip inverse of Parse: every space except "Default" gets a
// [[name]] header, each todo becomes a checkbox line carrying its priority
// tag, and every space block (even an empty one) ends with a blank line so
// hand-edited files keep their separators.
func Format(spaces []model.Space) []byte {
	var buf bytes.Buffer
	for _, space := range spaces {
		if space.Name != model.DefaultSpace {
			buf.WriteString("[[" + space.Name + "]]\n")
		}
		for _, item := range space.Items {
			checkbox := "[ ]"
			if item.Done {
				checkbox = "[x]"
			}
			buf.WriteString("- " + checkbox + " " + item.Text + " " + item.Priority.Tag() + "\n")
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
