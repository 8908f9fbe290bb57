package domain

// ExampleStocks returns the fixed example dataset used to seed a fresh
// instance. Tickers are prefixed "example" so they never collide with real
// ones.
func ExampleStocks() []*Stock {
	return []*Stock{
		{
			Ticker:   "exampleAAPL",
			Name:     "Apple Inc.",
			Country:  CountryUS,
			Industry: IndustryConsumerElectronics,
			Size:     SizeLarge,
			Style:    StyleGrowth,
		},
		{
			Ticker:   "exampleTSM",
			Name:     "Taiwan Semiconductor Manufacturing Co., Ltd.",
			Country:  CountryTW,
			Industry: IndustrySemiconductors,
			Size:     SizeLarge,
			Style:    StyleBlend,
		},
		{
			Ticker:   "exampleALIZF",
			Name:     "Allianz SE",
			Country:  CountryDE,
			Industry: IndustryInsuranceDiversified,
			Size:     SizeLarge,
			Style:    StyleValue,
		},
		{
			Ticker:   "exampleNEM",
			Name:     "Newmont Corporation",
			Country:  CountryUS,
			Industry: IndustryGold,
			Size:     SizeMid,
			Style:    StyleValue,
		},
		{
			Ticker:   "exampleIBDSF",
			Name:     "Iberdrola, S.A.",
			Country:  CountryES,
			Industry: IndustryUtilitiesDiversified,
			Size:     SizeLarge,
			Style:    StyleBlend,
		},
		{
			Ticker:   "exampleMELI",
			Name:     "MercadoLibre Inc.",
			Country:  CountryAR,
			Industry: IndustryInternetRetail,
			Size:     SizeLarge,
			Style:    StyleGrowth,
		},
		{
			Ticker:   "exampleNONOF",
			Name:     "Novo Nordisk A/S",
			Country:  CountryDK,
			Industry: IndustryBiotechnology,
			Size:     SizeLarge,
			Style:    StyleGrowth,
		},
		{
			Ticker:   "exampleGPDNF",
			Name:     "Danone SA",
			Country:  CountryFR,
			Industry: IndustryPackagedFoods,
			Size:     SizeLarge,
			Style:    StyleBlend,
		},
		{
			Ticker:   "exampleDOGEF",
			Name:     "Ørsted A/S",
			Country:  CountryDK,
			Industry: IndustryUtilitiesRenewable,
			Size:     SizeLarge,
			Style:    StyleBlend,
		},
		{
			Ticker:   "exampleKNNGF",
			Name:     "Kion Group AG",
			Country:  CountryDE,
			Industry: IndustryFarmHeavyConstructionMachinery,
			Size:     SizeMid,
			Style:    StyleBlend,
		},
	}
}
