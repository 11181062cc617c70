package model

// All lists every table in migration order: parents before the rows that reference them.
func All() []interface{} {
	return []interface{}{
		&Page{},
		&GlobalFeature{},
		&FeatureGroup{},
		&FeatureGroupItem{},
		&PageFeatureGroup{},
		&CTA{},
		&HeroSection{},
		&MediaSection{},
		&MediaSectionFeature{},
		&PricingSection{},
		&PricingPlan{},
		&FaqCategory{},
		&Faq{},
		&FaqSection{},
		&PageSection{},
		&Menu{},
		&MenuItem{},
		&HeaderConfig{},
		&HeaderNavItem{},
		&HeaderCTA{},
		&HeaderConfigMenu{},
		&SiteSettings{},
		&FormSubmission{},
	}
}
