// Package content holds the literal records rendered on the portfolio page.
package content

// Icon is a symbolic reference to a lucide icon, rendered through Iconify.
type Icon string

const (
	IconCode          Icon = "code"
	IconPalette       Icon = "palette"
	IconZap           Icon = "zap"
	IconAward         Icon = "award"
	IconBriefcase     Icon = "briefcase"
	IconGraduationCap Icon = "graduation-cap"
	IconGithub        Icon = "github"
	IconLinkedin      Icon = "linkedin"
	IconMail          Icon = "mail"
	IconArrowRight    Icon = "arrow-right"
	IconDownload      Icon = "download"
	IconChevronDown   Icon = "chevron-down"
	IconMenu          Icon = "menu"
	IconX             Icon = "x"
)

// Ref returns the Iconify data-icon value, e.g. "lucide:code".
func (i Icon) Ref() string {
	return "lucide:" + string(i)
}

type SkillEntry struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"min=0,max=100"`
}

type ServiceEntry struct {
	Icon        Icon   `json:"icon" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ProjectEntry struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"required,url"`
	Tags        []string `json:"tags" validate:"required,min=1,unique,dive,required"`
	Gradient    string   `json:"gradient" validate:"required"`
}

type ExperienceEntry struct {
	Icon        Icon   `json:"icon" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SocialLink is one of the icon links under the hero call-to-actions.
type SocialLink struct {
	Icon  Icon   `json:"icon" validate:"required"`
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

// Content is everything the page displays. Text fields marked as markdown are
// rendered through goldmark by the page renderer.
type Content struct {
	Owner    string   `json:"owner" validate:"required"`
	Initials string   `json:"initials" validate:"required"`
	Roles    []string `json:"roles" validate:"required,dive,required"`
	Tagline  string   `json:"tagline" validate:"required"`

	AboutIntro   string `json:"about_intro" validate:"required"`   // markdown
	ContactBlurb string `json:"contact_blurb" validate:"required"` // markdown
	ContactEmail string `json:"contact_email" validate:"required,email"`

	Skills      []SkillEntry      `json:"skills" validate:"required,dive"`
	Services    []ServiceEntry    `json:"services" validate:"required,dive"`
	Projects    []ProjectEntry    `json:"projects" validate:"required,dive"`
	Experiences []ExperienceEntry `json:"experiences" validate:"required,dive"`
	Socials     []SocialLink      `json:"socials" validate:"required,dive"`
}
