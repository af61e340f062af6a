package browser

import (
	"fmt"
	"strings"

	"web_controls/domain/entities"
)

// playwrightSelector renders a locator in playwright's selector syntax.
// XPath expressions built here start with "." so they also work below an element.
func playwrightSelector(loc entities.Locator) (string, error) {
	switch loc.By {
	case entities.ByID:
		return "id=" + loc.Value, nil
	case entities.ByXPath:
		return "xpath=" + loc.Value, nil
	case entities.ByCSSSelector, entities.ByTagName:
		return "css=" + loc.Value, nil
	case entities.ByName:
		return fmt.Sprintf("css=[name=%s]", cssString(loc.Value)), nil
	case entities.ByClassName:
		return fmt.Sprintf("css=[class~=%s]", cssString(loc.Value)), nil
	case entities.ByLinkText:
		return fmt.Sprintf("xpath=.//a[normalize-space(.)=%s]", xpathString(loc.Value)), nil
	case entities.ByPartialLinkText:
		return fmt.Sprintf("xpath=.//a[contains(normalize-space(.), %s)]", xpathString(loc.Value)), nil
	}
	return "", fmt.Errorf("unsupported locator strategy %q", loc.By)
}

func cssString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// xpathString quotes s as an XPath 1.0 literal, which has no escapes
func xpathString(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}

	parts := strings.Split(s, `"`)
	quoted := make([]string, 0, 2*len(parts))
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `'"'`)
		}
		quoted = append(quoted, `"`+part+`"`)
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}

// optionXPath matches the <option> below a <select> whose normalized text is
// exactly text. text itself is not normalized.
func optionXPath(text string) string {
	return fmt.Sprintf(".//option[normalize-space(.)=%s]", xpathString(text))
}
