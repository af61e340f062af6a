package controls

import (
	"context"

	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

var (
	rowLocator     = entities.CSS("tr")
	dataLocator    = entities.CSS("td")
	headLocator    = entities.CSS("th")
	anyCellLocator = entities.CSS("th, td")
	theadLocator   = entities.CSS("thead th")
	tbodyLocator   = entities.CSS("tbody tr")
)

// TableStrategy knows where a table layout keeps its headers and body rows
type TableStrategy interface {
	Headers(ctx context.Context, table interfaces.Element) ([]string, error)
	Body(ctx context.Context, table interfaces.Element) ([][]string, error)
}

var (
	// SimpleTable has only <td> rows and no headers
	SimpleTable TableStrategy = simpleTable{}

	// HeadingsTable keeps <th> headers in its first row
	HeadingsTable TableStrategy = headingsTable{}

	// HeaderBodyTable splits headers and rows into <thead> and <tbody>
	HeaderBodyTable TableStrategy = headerBodyTable{}

	// MixedTable mixes <th> and <td> cells in rows and has no header row
	MixedTable TableStrategy = mixedTable{}
)

type simpleTable struct{}

func (simpleTable) Headers(context.Context, interfaces.Element) ([]string, error) {
	return nil, nil
}

func (simpleTable) Body(ctx context.Context, table interfaces.Element) ([][]string, error) {
	rows, err := table.FindElements(ctx, rowLocator)
	if err != nil {
		return nil, err
	}
	return readRows(ctx, rows, dataLocator)
}

type headingsTable struct{}

func (headingsTable) Headers(ctx context.Context, table interfaces.Element) ([]string, error) {
	rows, err := table.FindElements(ctx, rowLocator)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return readCells(ctx, rows[0], headLocator)
}

func (headingsTable) Body(ctx context.Context, table interfaces.Element) ([][]string, error) {
	rows, err := table.FindElements(ctx, rowLocator)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return readRows(ctx, rows[1:], dataLocator)
}

type headerBodyTable struct{}

func (headerBodyTable) Headers(ctx context.Context, table interfaces.Element) ([]string, error) {
	return readCells(ctx, table, theadLocator)
}

func (headerBodyTable) Body(ctx context.Context, table interfaces.Element) ([][]string, error) {
	rows, err := table.FindElements(ctx, tbodyLocator)
	if err != nil {
		return nil, err
	}
	return readRows(ctx, rows, dataLocator)
}

type mixedTable struct{}

func (mixedTable) Headers(context.Context, interfaces.Element) ([]string, error) {
	return nil, nil
}

func (mixedTable) Body(ctx context.Context, table interfaces.Element) ([][]string, error) {
	rows, err := table.FindElements(ctx, rowLocator)
	if err != nil {
		return nil, err
	}
	return readRows(ctx, rows, anyCellLocator)
}

func readCells(ctx context.Context, parent interfaces.Element, cell entities.Locator) ([]string, error) {
	cells, err := parent.FindElements(ctx, cell)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(cells))
	for _, c := range cells {
		text, err := c.Text(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}

func readRows(ctx context.Context, rows []interfaces.Element, cell entities.Locator) ([][]string, error) {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells, err := readCells(ctx, row, cell)
		if err != nil {
			return nil, err
		}
		out = append(out, cells)
	}
	return out, nil
}

// Table reads a <table> through its strategy
type Table struct {
	control
	strategy TableStrategy
}

// NewTable binds the table at loc. A nil strategy reads it as a SimpleTable.
func NewTable(ctx context.Context, driver interfaces.Driver, loc entities.Locator, strategy TableStrategy, opts ...Option) (*Table, error) {
	c, err := newControl(ctx, driver, loc, opts)
	if err != nil {
		return nil, err
	}
	if strategy == nil {
		strategy = SimpleTable
	}
	return &Table{control: c, strategy: strategy}, nil
}

func (t *Table) GetHeaders(ctx context.Context) ([]string, error) {
	return t.strategy.Headers(ctx, t.element)
}

func (t *Table) GetBody(ctx context.Context) ([][]string, error) {
	return t.strategy.Body(ctx, t.element)
}

// GetTable returns the body rows, preceded by the header row when there is one
func (t *Table) GetTable(ctx context.Context) ([][]string, error) {
	headers, err := t.GetHeaders(ctx)
	if err != nil {
		return nil, err
	}
	body, err := t.GetBody(ctx)
	if err != nil {
		return nil, err
	}

	if len(headers) == 0 {
		return body, nil
	}
	return append([][]string{headers}, body...), nil
}
