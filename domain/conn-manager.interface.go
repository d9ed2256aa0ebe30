package domain

// VenueConnector dials every configured venue for a symbol. The slice
// order is fixed and observable: levels of an earlier stream win exact
// ties against levels of a later one.
type VenueConnector interface {
	OpenStreams(symbol *MarketSymbol) ([]VenueStream, error)
}
