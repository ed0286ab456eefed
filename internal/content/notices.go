package content

import "sitecontent/internal/cms"

// MapNoticeGroups groups a flat notice collection by its category key.
// Categories appear in first-seen order; uncategorised notices fall into
// "General".
func MapNoticeGroups(entries []cms.Entry) []NoticeGroup {
	if entries == nil {
		return nil
	}

	groups := make([]NoticeGroup, 0)
	index := make(map[string]int)

	for _, e := range entries {
		category := e.StringOr("category", "General")

		notice := Notice{
			Title:       e.String("title"),
			DocumentURL: documentURL(e),
			Date:        displayDate(e.String("date")),
			Category:    category,
		}

		i, seen := index[category]
		if !seen {
			i = len(groups)
			index[category] = i
			groups = append(groups, NoticeGroup{
				Category: category,
				Notices:  []Notice{},
			})
		}
		groups[i].Notices = append(groups[i].Notices, notice)
	}

	return groups
}

// documentURL resolves the notice document, which is either a plain URL
// field or an uploaded file entity.
func documentURL(e cms.Entry) string {
	if s := e.String("documentUrl"); s != "" {
		return s
	}
	if doc, ok := e.Entry("document"); ok {
		return doc.String("url")
	}
	return ""
}
