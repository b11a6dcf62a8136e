package card

import (
	"fmt"
	"strings"
)

// CommentBlock accumulates the CM lines that precede the geometry and ends
// them with a CE card.
type CommentBlock struct {
	ruleWidth int
	lines     []string
	endNote   string
}

// NewCommentBlock creates an empty block whose horizontal rules are
// ruleWidth dashes wide.
func NewCommentBlock(ruleWidth int) *CommentBlock {
	return &CommentBlock{ruleWidth: ruleWidth}
}

// Rule appends a dashed separator line.
func (c *CommentBlock) Rule() *CommentBlock {
	c.lines = append(c.lines, string(CodeComment)+" "+strings.Repeat("-", c.ruleWidth))
	return c
}

// Line appends one formatted comment line.
func (c *CommentBlock) Line(format string, args ...any) *CommentBlock {
	c.lines = append(c.lines, string(CodeComment)+"  "+fmt.Sprintf(format, args...))
	return c
}

// Text appends a comment line with a single space after CM, the layout
// hand-written decks use for their banner.
func (c *CommentBlock) Text(format string, args ...any) *CommentBlock {
	c.lines = append(c.lines, string(CodeComment)+" "+fmt.Sprintf(format, args...))
	return c
}

// EndNote sets the text printed after the CE card.
func (c *CommentBlock) EndNote(note string) *CommentBlock {
	c.endNote = note
	return c
}

// Blank appends an empty comment line.
func (c *CommentBlock) Blank() *CommentBlock {
	c.lines = append(c.lines, string(CodeComment)+"  ")
	return c
}

// String renders the block terminated by CE. An empty block still yields the
// CE card, since NEC2 requires one before the geometry.
func (c *CommentBlock) String() string {
	var b strings.Builder
	for _, l := range c.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(string(CodeCommentEnd))
	if c.endNote != "" {
		b.WriteByte(' ')
		b.WriteString(c.endNote)
	}
	return b.String()
}
