package service

import (
	"sort"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/entity"
)

// renderFeatureGroup is the one translation from a stored group to what the site renders:
// heading/subheading plus the items that are visible both in the group and globally.
func renderFeatureGroup(g *entity.FeatureGroup) *dto.RenderedFeatureGroup {
	if g == nil {
		return nil
	}
	items := make([]*dto.RenderedFeatureItem, 0, len(g.GroupItems))
	for _, it := range g.GroupItems {
		if !it.Renderable() {
			continue
		}
		items = append(items, &dto.RenderedFeatureItem{
			Id:          it.Id,
			FeatureId:   it.FeatureId,
			Title:       it.Feature.Title,
			Description: it.Feature.Description,
			IconName:    it.Feature.IconName,
			Category:    string(it.Feature.Category),
			SortOrder:   it.SortOrder,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	return &dto.RenderedFeatureGroup{
		Id:         g.Id,
		Name:       g.Name,
		Heading:    g.Heading,
		Subheading: g.Subheading,
		LayoutType: g.LayoutType,
		IsActive:   g.IsActive,
		Items:      items,
	}
}

// visibleGroupItems trims a loaded group to renderable items in place.
func visibleGroupItems(g *entity.FeatureGroup) {
	if g == nil {
		return
	}
	kept := g.GroupItems[:0]
	for _, it := range g.GroupItems {
		if it.Renderable() {
			kept = append(kept, it)
		}
	}
	g.GroupItems = kept
}

func renderAssignment(a *entity.PageFeatureGroup) *dto.PageFeatureGroupResponse {
	return &dto.PageFeatureGroupResponse{
		Id:             a.Id,
		PageId:         a.PageId,
		FeatureGroupId: a.FeatureGroupId,
		SortOrder:      a.SortOrder,
		IsVisible:      a.IsVisible,
		FeatureGroup:   renderFeatureGroup(a.FeatureGroup),
	}
}
