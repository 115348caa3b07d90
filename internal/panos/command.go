package panos

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"
)

// CommandXML converts an operational command written the way it is typed on
// the CLI into the XML form the API expects. Quoted words become the text of
// the preceding keyword:
//
//	show jobs all                  -> <show><jobs><all></all></jobs></show>
//	show jobs id "4"               -> <show><jobs><id>4</id></jobs></show>
//
// Commands that already start with "<" are returned unchanged.
func CommandXML(cmd string) (string, error) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return "", errors.New("empty command")
	}
	if strings.HasPrefix(cmd, "<") {
		return cmd, nil
	}

	tokens, err := splitCommand(cmd)
	if err != nil {
		return "", err
	}

	root := &cmdNode{}
	stack := []*cmdNode{root}
	for _, tok := range tokens {
		current := stack[len(stack)-1]
		if tok.quoted {
			if current == root {
				return "", errors.Errorf("value %q has no keyword", tok.value)
			}
			current.text = tok.value
			current.hasText = true
			stack = stack[:len(stack)-1]
			continue
		}
		child := &cmdNode{name: tok.value}
		current.children = append(current.children, child)
		stack = append(stack, child)
	}

	var b strings.Builder
	for _, child := range root.children {
		child.render(&b)
	}
	return b.String(), nil
}

type cmdNode struct {
	name     string
	text     string
	hasText  bool
	children []*cmdNode
}

func (n *cmdNode) render(b *strings.Builder) {
	b.WriteString("<" + n.name + ">")
	if n.hasText {
		xml.EscapeText(b, []byte(n.text))
	}
	for _, child := range n.children {
		child.render(b)
	}
	b.WriteString("</" + n.name + ">")
}

type cmdToken struct {
	value  string
	quoted bool
}

// splitCommand splits on whitespace and keeps single or double quoted runs
// together.
func splitCommand(cmd string) ([]cmdToken, error) {
	var tokens []cmdToken
	var cur strings.Builder
	var quote rune
	inWord := false

	flush := func() {
		if inWord {
			tokens = append(tokens, cmdToken{value: cur.String()})
			cur.Reset()
			inWord = false
		}
	}

	for _, r := range cmd {
		switch {
		case quote != 0:
			if r == quote {
				tokens = append(tokens, cmdToken{value: cur.String(), quoted: true})
				cur.Reset()
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			flush()
			quote = r
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, errors.Errorf("unterminated quote in command %q", cmd)
	}
	flush()
	return tokens, nil
}
