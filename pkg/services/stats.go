package services

import (
	"sort"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

// Pure aggregate functions over a catalog snapshot. The controller and the
// insight requester both derive their numbers through these so the stats
// panel and the generated summary can never disagree about the math.

func catalogDownloads(catalog data.Catalog) int {
	total := 0
	for _, exp := range catalog.Experiences {
		for _, item := range exp.Items {
			total += item.Count
		}
	}
	return total
}

func catalogComments(catalog data.Catalog) int {
	total := len(catalog.Guestbook)
	for _, exp := range catalog.Experiences {
		total += len(exp.Comments)
	}
	return total
}

func catalogTopItems(catalog data.Catalog, n int) []ItemStat {
	var stats []ItemStat
	for _, exp := range catalog.Experiences {
		for _, item := range exp.Items {
			stats = append(stats, ItemStat{
				ExperienceID:    exp.ID,
				ExperienceTitle: exp.Title,
				Label:           item.Label,
				Filename:        item.Filename,
				Count:           item.Count,
			})
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}

// catalogRecentComments merges the guestbook with every per-experience list.
// Comment ids are time-ordered, so sorting by id descending is sorting by
// submission time.
func catalogRecentComments(catalog data.Catalog, n int) []data.Comment {
	var all []data.Comment
	all = append(all, catalog.Guestbook...)
	for _, exp := range catalog.Experiences {
		all = append(all, exp.Comments...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ID > all[j].ID
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}
