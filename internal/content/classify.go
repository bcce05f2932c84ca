// Package content holds the pure presentation rules shared by the notice,
// bulletin and material listings: category labels, emphasis tags,
// category filtering and date display.
package content

import (
	"unicode"
	"unicode/utf8"

	"github.com/ietdavv/iet-portal/internal/model"
)

// Emphasis tags understood by the front end's badge component.
const (
	EmphasisDefault     = "default"
	EmphasisDestructive = "destructive"
	EmphasisSecondary   = "secondary"
	EmphasisOutline     = "outline"
)

// Icon tags for material categories.
const (
	IconBookOpen     = "book-open"
	IconFileText     = "file-text"
	IconFlaskConical = "flask-conical"
)

// Classification is the display treatment of a category or priority value.
// Fields that do not apply to a given vocabulary are left empty.
type Classification struct {
	Icon     string `json:"icon,omitempty"`
	Label    string `json:"label,omitempty"`
	Emphasis string `json:"emphasis,omitempty"`
}

// ClassifyNotice maps a notice category to its label. Unknown categories are
// shown as General.
func ClassifyNotice(category string) Classification {
	switch category {
	case model.NoticeCategoryExam:
		return Classification{Label: "Examination"}
	case model.NoticeCategoryEvent:
		return Classification{Label: "Event"}
	case model.NoticeCategoryHoliday:
		return Classification{Label: "Holiday"}
	default:
		return Classification{Label: "General"}
	}
}

// ClassifyPriority maps a notice priority to its emphasis tag.
func ClassifyPriority(priority string) Classification {
	switch priority {
	case model.NoticePriorityHigh:
		return Classification{Emphasis: EmphasisDestructive}
	case model.NoticePriorityNormal:
		return Classification{Emphasis: EmphasisSecondary}
	default:
		return Classification{Emphasis: EmphasisDefault}
	}
}

// ClassifyBulletin maps a bulletin category to a badge variant. The label is
// always the category with its first character upper-cased.
func ClassifyBulletin(category string) Classification {
	c := Classification{Label: capitalize(category)}
	switch category {
	case model.BulletinCategorySchedule:
		c.Emphasis = EmphasisDefault
	case model.BulletinCategoryExam:
		c.Emphasis = EmphasisDestructive
	case model.BulletinCategoryHoliday:
		c.Emphasis = EmphasisSecondary
	case model.BulletinCategoryEvent:
		c.Emphasis = EmphasisOutline
	default:
		c.Emphasis = EmphasisDefault
	}
	return c
}

// ClassifyMaterial maps a material category to an icon and a tab name.
// Unknown categories keep their raw text as the name.
func ClassifyMaterial(category string) Classification {
	switch category {
	case model.MaterialCategoryNotes:
		return Classification{Icon: IconBookOpen, Label: "Notes"}
	case model.MaterialCategoryPYQ:
		return Classification{Icon: IconFileText, Label: "Previous Year Questions"}
	case model.MaterialCategoryPractical:
		return Classification{Icon: IconFlaskConical, Label: "Practicals"}
	case model.MaterialCategoryMST:
		return Classification{Icon: IconFileText, Label: "MST Papers"}
	default:
		return Classification{Icon: IconBookOpen, Label: category}
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
