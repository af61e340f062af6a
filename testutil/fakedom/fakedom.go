// Package fakedom is an in-memory stand-in for a browser session. Nodes are
// registered under the exact locator that should find them, which keeps tests
// free of any selector engine.
package fakedom

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

// Node is a fake element. It implements interfaces.Element.
type Node struct {
	Tag       string
	Content   string
	Attrs     map[string]string
	Value     string
	Displayed bool
	Enabled   bool
	Selected  bool
	Options   []*Node

	// Frame is the document behind an <iframe> node
	Frame *Document

	// OnClick and OnKeys run after a click or after keys were sent;
	// OnKeys receives the whole input value
	OnClick func()
	OnKeys  func(value string)

	Clicks int
	Clears int
	Hovers int
	Typed  []string

	removed  bool
	children map[entities.Locator][]*Node
}

// El creates a visible, enabled node
func El(tag, text string) *Node {
	return &Node{
		Tag:       tag,
		Content:   text,
		Attrs:     make(map[string]string),
		Displayed: true,
		Enabled:   true,
		children:  make(map[entities.Locator][]*Node),
	}
}

// Input creates an <input> of the given type
func Input(typ string) *Node {
	return El("input", "").WithAttr("type", typ)
}

// Select creates a <select> with one <option> per text. The first option starts selected.
func Select(options ...string) *Node {
	n := El("select", "")
	for i, text := range options {
		opt := El("option", text)
		opt.Selected = i == 0
		n.Options = append(n.Options, opt)
	}
	return n
}

// IFrame creates an <iframe> node whose content is doc
func IFrame(doc *Document) *Node {
	n := El("iframe", "")
	n.Frame = doc
	return n
}

func (n *Node) WithAttr(name, value string) *Node {
	n.Attrs[name] = value
	return n
}

// Hide makes the node report not displayed
func (n *Node) Hide() *Node {
	n.Displayed = false
	return n
}

func (n *Node) Disable() *Node {
	n.Enabled = false
	return n
}

func (n *Node) Check() *Node {
	n.Selected = true
	return n
}

// Child registers nested nodes found by loc relative to n
func (n *Node) Child(loc entities.Locator, nodes ...*Node) *Node {
	n.children[loc] = append(n.children[loc], nodes...)
	return n
}

// Detach marks the node as removed from the document
func (n *Node) Detach() {
	n.removed = true
}

func (n *Node) live() error {
	if n.removed {
		return errors.Wrapf(entities.ErrStaleElement, "<%s>", n.Tag)
	}
	return nil
}

func (n *Node) isTextInput() bool {
	return n.Tag == "input" || n.Tag == "textarea"
}

func (n *Node) Click(ctx context.Context) error {
	if err := n.live(); err != nil {
		return err
	}
	n.Clicks++
	if n.Tag == "input" {
		switch n.Attrs["type"] {
		case "checkbox":
			n.Selected = !n.Selected
		case "radio":
			n.Selected = true
		}
	}
	if n.OnClick != nil {
		n.OnClick()
	}
	return nil
}

func (n *Node) Clear(ctx context.Context) error {
	if err := n.live(); err != nil {
		return err
	}
	n.Clears++
	n.Value = ""
	return nil
}

func (n *Node) SendKeys(ctx context.Context, text string) error {
	if err := n.live(); err != nil {
		return err
	}
	n.Typed = append(n.Typed, text)
	n.Value += text
	if n.OnKeys != nil {
		n.OnKeys(n.Value)
	}
	return nil
}

func (n *Node) Hover(ctx context.Context) error {
	if err := n.live(); err != nil {
		return err
	}
	n.Hovers++
	return nil
}

func (n *Node) IsDisplayed(ctx context.Context) (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.Displayed, nil
}

func (n *Node) IsEnabled(ctx context.Context) (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.Enabled, nil
}

func (n *Node) IsSelected(ctx context.Context) (bool, error) {
	if err := n.live(); err != nil {
		return false, err
	}
	return n.Selected, nil
}

func (n *Node) TagName(ctx context.Context) (string, error) {
	if err := n.live(); err != nil {
		return "", err
	}
	return n.Tag, nil
}

func (n *Node) Text(ctx context.Context) (string, error) {
	if err := n.live(); err != nil {
		return "", err
	}
	return n.Content, nil
}

// GetAttribute reads "value" from the live input value, everything else from Attrs
func (n *Node) GetAttribute(ctx context.Context, name string) (string, error) {
	if err := n.live(); err != nil {
		return "", err
	}
	if name == "value" && n.isTextInput() {
		return n.Value, nil
	}
	v, ok := n.Attrs[name]
	if !ok {
		return "", errors.Wrapf(entities.ErrNoAttribute, "%s on <%s>", name, n.Tag)
	}
	return v, nil
}

func (n *Node) SelectByVisibleText(ctx context.Context, text string) error {
	if err := n.live(); err != nil {
		return err
	}
	for _, opt := range n.Options {
		if normalize(opt.Content) != text {
			continue
		}
		for _, other := range n.Options {
			other.Selected = other == opt
		}
		return nil
	}
	return errors.Wrapf(entities.ErrOptionNotFound, "%q", text)
}

func (n *Node) SelectedOptionText(ctx context.Context) (string, error) {
	if err := n.live(); err != nil {
		return "", err
	}
	for _, opt := range n.Options {
		if opt.Selected {
			return opt.Content, nil
		}
	}
	return "", errors.Wrap(entities.ErrOptionNotFound, "no option selected")
}

func (n *Node) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	els, err := n.FindElements(ctx, loc)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, errors.Wrapf(entities.ErrNotFound, "%s", loc)
	}
	return els[0], nil
}

func (n *Node) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	if err := n.live(); err != nil {
		return nil, err
	}
	return liveElements(n.children[loc]), nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func liveElements(nodes []*Node) []interfaces.Element {
	var out []interfaces.Element
	for _, n := range nodes {
		if !n.removed {
			out = append(out, n)
		}
	}
	return out
}

type pendingNode struct {
	loc  entities.Locator
	node *Node
	at   time.Time
}

// Document maps locators to the nodes they resolve to
type Document struct {
	nodes   map[entities.Locator][]*Node
	pending []pendingNode
}

func NewDocument() *Document {
	return &Document{nodes: make(map[entities.Locator][]*Node)}
}

// Add attaches nodes under loc
func (d *Document) Add(loc entities.Locator, nodes ...*Node) {
	d.nodes[loc] = append(d.nodes[loc], nodes...)
}

// AddAfter attaches nodes under loc once delay has passed
func (d *Document) AddAfter(loc entities.Locator, delay time.Duration, nodes ...*Node) {
	at := time.Now().Add(delay)
	for _, n := range nodes {
		d.pending = append(d.pending, pendingNode{loc: loc, node: n, at: at})
	}
}

// Remove detaches every node under loc, leaving handles to them stale
func (d *Document) Remove(loc entities.Locator) {
	for _, n := range d.nodes[loc] {
		n.Detach()
	}
	delete(d.nodes, loc)

	kept := d.pending[:0]
	for _, p := range d.pending {
		if p.loc != loc {
			kept = append(kept, p)
		}
	}
	d.pending = kept
}

// Unlist stops loc from matching its nodes while existing handles stay live
func (d *Document) Unlist(loc entities.Locator) {
	delete(d.nodes, loc)
}

func (d *Document) find(loc entities.Locator) []interfaces.Element {
	now := time.Now()
	kept := d.pending[:0]
	for _, p := range d.pending {
		if now.Before(p.at) {
			kept = append(kept, p)
			continue
		}
		d.nodes[p.loc] = append(d.nodes[p.loc], p.node)
	}
	d.pending = kept

	return liveElements(d.nodes[loc])
}

// Browser is a fake interfaces.Driver over a root Document
type Browser struct {
	*Document

	URL   string
	Title string

	// Scripts maps a script body to the value ExecuteScript returns for it
	Scripts  map[string]interface{}
	Executed []string

	Screenshot []byte
	Visited    []string
	Closed     bool

	current *Document
}

func NewBrowser() *Browser {
	doc := NewDocument()
	return &Browser{
		Document: doc,
		Scripts:  make(map[string]interface{}),
		current:  doc,
	}
}

func (b *Browser) FindElement(ctx context.Context, loc entities.Locator) (interfaces.Element, error) {
	els, err := b.FindElements(ctx, loc)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, errors.Wrapf(entities.ErrNotFound, "%s", loc)
	}
	return els[0], nil
}

func (b *Browser) FindElements(ctx context.Context, loc entities.Locator) ([]interfaces.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.current.find(loc), nil
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	b.URL = url
	b.Visited = append(b.Visited, url)
	return nil
}

func (b *Browser) GetCurrentURL(ctx context.Context) (string, error) {
	return b.URL, nil
}

func (b *Browser) GetPageTitle(ctx context.Context) (string, error) {
	return b.Title, nil
}

func (b *Browser) ExecuteScript(ctx context.Context, script string, args ...interface{}) (interface{}, error) {
	b.Executed = append(b.Executed, script)
	return b.Scripts[script], nil
}

func (b *Browser) SwitchToFrame(ctx context.Context, frame interfaces.Element) error {
	n, ok := frame.(*Node)
	if !ok || n.Frame == nil {
		return errors.New("element is not a frame")
	}
	if err := n.live(); err != nil {
		return err
	}
	b.current = n.Frame
	return nil
}

func (b *Browser) SwitchToDefault(ctx context.Context) error {
	b.current = b.Document
	return nil
}

// InFrame reports whether lookups are currently scoped to a frame
func (b *Browser) InFrame() bool {
	return b.current != b.Document
}

func (b *Browser) TakeScreenshot(ctx context.Context) ([]byte, error) {
	return b.Screenshot, nil
}

func (b *Browser) Close() error {
	b.Closed = true
	return nil
}

var (
	_ interfaces.Driver  = (*Browser)(nil)
	_ interfaces.Element = (*Node)(nil)
)
