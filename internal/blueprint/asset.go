package blueprint

import (
	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
)

// Body is the raw payload body carried in a "+ Body" bullet's code block.
type Body struct {
	base
	content string
}

func (*Body) nestedSectionID() string { return "body" }

func (b *Body) Content() string { return b.content }

func (b *Body) String() string { return "Body\n" + b.content }

// Schema is the raw JSON/XML schema carried in a "+ Schema" bullet's code
// block.
type Schema struct {
	base
	content string
}

func (*Schema) nestedSectionID() string { return "schema" }

func (s *Schema) Content() string { return s.content }

func (s *Schema) String() string { return "Schema\n" + s.content }

func parseAssetFromElement(keyword string, node *etree.Element) (content string, err error) {
	if len(node.Children) == 0 {
		return "", &bperrors.InvalidAttributeFormatError{Line: node.Text}
	}
	first := node.Children[0]
	if first.Tag != etree.TagPre && first.Tag != etree.TagP {
		return "", &bperrors.InvalidAttributeFormatError{Line: keyword}
	}
	return etree.PreContents(first), nil
}

func init() {
	registerSection([]string{"Body"}, func(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
		content, err := parseAssetFromElement("Body", node)
		if err != nil {
			return nil, err
		}
		return &Body{content: content}, nil
	})
	registerSection([]string{"Schema"}, func(node *etree.Element, _ bperrors.WarnSink) (registeredSection, error) {
		content, err := parseAssetFromElement("Schema", node)
		if err != nil {
			return nil, err
		}
		return &Schema{content: content}, nil
	})
}
