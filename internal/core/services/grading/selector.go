package grading

import (
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/static/errs"
)

// SelectTestCases applies an optional per-category selection to a
// problem's full test-case list. Nil selection is the identity. An
// explicit index list wins over a range when a config carries both.
// Indices keep their given order and may repeat; the result is never a
// deduplicated or re-sorted view.
func SelectTestCases(full []domain.TestCase, sel *domain.CategorySelection, category string) ([]domain.TestCase, error) {
	if sel == nil {
		return full, nil
	}

	if sel.Indices != nil {
		out := make([]domain.TestCase, 0, len(sel.Indices))
		for _, idx := range sel.Indices {
			if idx < 0 || idx >= len(full) {
				return nil, &errs.InvalidConfigError{
					Category: category,
					Indices:  sel.Indices,
					Count:    len(full),
					Reason:   "index out of range",
				}
			}
			out = append(out, full[idx])
		}
		return out, nil
	}

	if sel.Range != nil {
		r := sel.Range
		if r.Start < 0 || r.End >= len(full) || r.Start > r.End {
			return nil, &errs.InvalidConfigError{
				Category:   category,
				RangeStart: r.Start,
				RangeEnd:   r.End,
				Count:      len(full),
				Reason:     "range out of bounds",
			}
		}
		return full[r.Start : r.End+1], nil
	}

	return full, nil
}
