package pages

import (
	"context"

	"web_controls/application/controls"
	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

const AcademyPath = "/"

var academyCoursesLink = entities.XPath("//a[text()='Courses']")

// AcademyPage is the academy landing page. It is also what the practice
// page embeds in its iframe.
type AcademyPage struct {
	*BasePage
}

func NewAcademyPage(driver interfaces.Driver, baseURL string, opts ...controls.Option) *AcademyPage {
	return &AcademyPage{BasePage: NewBasePage(driver, baseURL+AcademyPath, opts...)}
}

func (p *AcademyPage) CoursesLink(ctx context.Context) (*controls.Link, error) {
	return controls.NewLink(ctx, p.driver, academyCoursesLink, p.opts...)
}
