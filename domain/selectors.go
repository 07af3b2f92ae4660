package domain

// CSS selectors used across the scraper, centralised so a site markup change
// is a one-file update.
const (
	// Search results page
	SelectorCardMarker = ".ot-card-v2__info-container"
	SelectorCardLink   = "a.ot-card-v2.link.link--muted"

	// Listing detail page
	SelectorTitle          = "h1.listing-header__headline"
	SelectorPriceSizeGroup = "div.card-v2-text-container__group--boxed"
	SelectorPriceColumn    = "div.card-v2-text-container__column--desktop-wide > h2.card-v2-text-container__title"
	SelectorSizeColumn     = "div.card-v2-text-container__column:not(.card-v2-text-container__column--desktop-wide) > h2.card-v2-text-container__title"
	SelectorDescription    = "div.listing-overview"
	SelectorDetails        = "div.listing-details-container"
	SelectorDetailsRow     = "dl > div"
	SelectorDetailsTerm    = "dt"
	SelectorDetailsValue   = "dd"
)
