package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"web_controls/config"
	"web_controls/domain/entities"
)

// locator prefixes accepted on the command line, e.g. css=#ui-id-1
var strategyPrefixes = map[string]entities.By{
	"id":           entities.ByID,
	"css":          entities.ByCSSSelector,
	"xpath":        entities.ByXPath,
	"name":         entities.ByName,
	"tag":          entities.ByTagName,
	"class":        entities.ByClassName,
	"link":         entities.ByLinkText,
	"partial-link": entities.ByPartialLinkText,
}

// usage lists the commands with their arguments
const usage = `Commands:
  goto <url|practice|academy|shop>
  click <locator>
  text <locator>
  displayed <locator>
  select <locator> <option text>
  type-ahead <locator> <list locator> <item locator> <value>
  partial <locator> <list locator> <item locator> <value> <chars>
  set <locator> <text>
  check <locator>
  uncheck <locator>
  table <locator> [simple|headings|header-body|mixed]
  title
  inspect <locator>
  screenshot [name]
  quit

Locators are <strategy>=<value> with strategy one of id, css, xpath, name,
tag, class, link, partial-link; or @<name> from the locators file.
Item locators take %s where the value goes. Quote arguments with spaces.`

// parser turns console lines into actions
type parser struct {
	locators config.Locators
}

func (p *parser) parse(line string) (entities.Action, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return entities.Action{}, fmt.Errorf("bad quoting: %w", err)
	}
	if len(args) == 0 {
		return entities.Action{}, fmt.Errorf("empty command")
	}

	action := entities.Action{Type: entities.ActionType(strings.ToLower(args[0]))}
	args = args[1:]

	switch action.Type {
	case entities.ActionTitle:
		return action, expectArgs(action, args, 0)

	case "exit", "q":
		action.Type = entities.ActionQuit
		return action, nil

	case entities.ActionQuit:
		return action, nil

	case entities.ActionNavigate:
		if err := expectArgs(action, args, 1); err != nil {
			return action, err
		}
		action.URL = args[0]
		return action, nil

	case entities.ActionShot:
		if len(args) > 1 {
			return action, fmt.Errorf("%s takes at most one argument", action.Type)
		}
		action.Text = "screenshot"
		if len(args) == 1 {
			action.Text = args[0]
		}
		return action, nil

	case entities.ActionClick, entities.ActionText, entities.ActionDisplayed,
		entities.ActionCheck, entities.ActionUncheck, entities.ActionInspect:
		if err := expectArgs(action, args, 1); err != nil {
			return action, err
		}
		action.Locator, err = p.locator(args[0])
		return action, err

	case entities.ActionTable:
		if len(args) != 1 && len(args) != 2 {
			return action, fmt.Errorf("%s takes a locator and an optional layout", action.Type)
		}
		if len(args) == 2 {
			action.Text = args[1]
		}
		action.Locator, err = p.locator(args[0])
		return action, err

	case entities.ActionSelect, entities.ActionSetText:
		if err := expectArgs(action, args, 2); err != nil {
			return action, err
		}
		action.Text = args[1]
		action.Locator, err = p.locator(args[0])
		return action, err

	case entities.ActionTypeAhead, entities.ActionPartial:
		want := 4
		if action.Type == entities.ActionPartial {
			want = 5
		}
		if err := expectArgs(action, args, want); err != nil {
			return action, err
		}
		if action.Locator, err = p.locator(args[0]); err != nil {
			return action, err
		}
		if action.ListLocator, err = p.locator(args[1]); err != nil {
			return action, err
		}
		if action.ItemLocator, err = p.locator(args[2]); err != nil {
			return action, err
		}
		action.Text = args[3]
		if action.Type == entities.ActionPartial {
			if action.CharNum, err = strconv.Atoi(args[4]); err != nil {
				return action, fmt.Errorf("chars must be a number: %w", err)
			}
		}
		return action, nil
	}

	return action, fmt.Errorf("unknown command %q", args0(line))
}

func (p *parser) locator(arg string) (entities.Locator, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		loc, found := p.locators.Lookup(name)
		if !found {
			return entities.Locator{}, fmt.Errorf("no locator named %q", name)
		}
		return loc, nil
	}

	prefix, value, ok := strings.Cut(arg, "=")
	if !ok || value == "" {
		return entities.Locator{}, fmt.Errorf("locator %q is not <strategy>=<value>", arg)
	}
	by, ok := strategyPrefixes[prefix]
	if !ok {
		return entities.Locator{}, fmt.Errorf("unknown locator strategy %q", prefix)
	}
	return entities.NewLocator(by, value), nil
}

func expectArgs(action entities.Action, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", action.Type, n, len(args))
	}
	return nil
}

func args0(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
