package domain

// Country is the ISO 3166-1 alpha-2 code of the country a stock's company is
// headquartered in.
type Country string

const (
	CountryAR Country = "AR"
	CountryAT Country = "AT"
	CountryAU Country = "AU"
	CountryBE Country = "BE"
	CountryBR Country = "BR"
	CountryCA Country = "CA"
	CountryCH Country = "CH"
	CountryCN Country = "CN"
	CountryDE Country = "DE"
	CountryDK Country = "DK"
	CountryES Country = "ES"
	CountryFI Country = "FI"
	CountryFR Country = "FR"
	CountryGB Country = "GB"
	CountryIE Country = "IE"
	CountryIN Country = "IN"
	CountryIT Country = "IT"
	CountryJP Country = "JP"
	CountryKR Country = "KR"
	CountryNL Country = "NL"
	CountryNO Country = "NO"
	CountryNZ Country = "NZ"
	CountryPT Country = "PT"
	CountrySE Country = "SE"
	CountryTW Country = "TW"
	CountryUS Country = "US"
)

var countries = map[Country]bool{
	CountryAR: true, CountryAT: true, CountryAU: true, CountryBE: true,
	CountryBR: true, CountryCA: true, CountryCH: true, CountryCN: true,
	CountryDE: true, CountryDK: true, CountryES: true, CountryFI: true,
	CountryFR: true, CountryGB: true, CountryIE: true, CountryIN: true,
	CountryIT: true, CountryJP: true, CountryKR: true, CountryNL: true,
	CountryNO: true, CountryNZ: true, CountryPT: true, CountrySE: true,
	CountryTW: true, CountryUS: true,
}

// ParseCountry validates a country code. Unknown codes are an explicit error,
// they never pass through silently.
func ParseCountry(s string) (Country, error) {
	if c := Country(s); countries[c] {
		return c, nil
	}
	return "", BadRequestf("unknown country %q", s)
}

// Industry is the Morningstar industry classification of a stock, with all
// punctuation stripped (e.g. "Farm & Heavy Construction Machinery" becomes
// FarmHeavyConstructionMachinery).
type Industry string

const (
	IndustryBanksDiversified               Industry = "BanksDiversified"
	IndustryBiotechnology                  Industry = "Biotechnology"
	IndustryConsumerElectronics            Industry = "ConsumerElectronics"
	IndustryDrugManufacturersGeneral       Industry = "DrugManufacturersGeneral"
	IndustryFarmHeavyConstructionMachinery Industry = "FarmHeavyConstructionMachinery"
	IndustryGold                           Industry = "Gold"
	IndustryInsuranceDiversified           Industry = "InsuranceDiversified"
	IndustryInternetRetail                 Industry = "InternetRetail"
	IndustryOilGasIntegrated               Industry = "OilGasIntegrated"
	IndustryPackagedFoods                  Industry = "PackagedFoods"
	IndustrySemiconductors                 Industry = "Semiconductors"
	IndustrySoftwareInfrastructure         Industry = "SoftwareInfrastructure"
	IndustrySpecialtyChemicals             Industry = "SpecialtyChemicals"
	IndustryTelecomServices                Industry = "TelecomServices"
	IndustryUtilitiesDiversified           Industry = "UtilitiesDiversified"
	IndustryUtilitiesRenewable             Industry = "UtilitiesRenewable"
)

var industries = map[Industry]bool{
	IndustryBanksDiversified: true, IndustryBiotechnology: true,
	IndustryConsumerElectronics: true, IndustryDrugManufacturersGeneral: true,
	IndustryFarmHeavyConstructionMachinery: true, IndustryGold: true,
	IndustryInsuranceDiversified: true, IndustryInternetRetail: true,
	IndustryOilGasIntegrated: true, IndustryPackagedFoods: true,
	IndustrySemiconductors: true, IndustrySoftwareInfrastructure: true,
	IndustrySpecialtyChemicals: true, IndustryTelecomServices: true,
	IndustryUtilitiesDiversified: true, IndustryUtilitiesRenewable: true,
}

// ParseIndustry validates an industry code.
func ParseIndustry(s string) (Industry, error) {
	if i := Industry(s); industries[i] {
		return i, nil
	}
	return "", BadRequestf("unknown industry %q", s)
}

// Size is the market capitalization class of a stock. Sizes have a fixed
// ordinal ordering (Small < Mid < Large) used for sorting only.
type Size string

const (
	SizeSmall Size = "Small"
	SizeMid   Size = "Mid"
	SizeLarge Size = "Large"
)

var sizeOrdinals = map[Size]int{
	SizeSmall: 1,
	SizeMid:   2,
	SizeLarge: 3,
}

// Ordinal returns the sort rank of the size. An unset or unknown size ranks
// lowest (0).
func (s Size) Ordinal() int { return sizeOrdinals[s] }

// ParseSize validates a size.
func ParseSize(s string) (Size, error) {
	if sz := Size(s); sizeOrdinals[sz] != 0 {
		return sz, nil
	}
	return "", BadRequestf("unknown size %q", s)
}

// Style is the investment style of a stock. Styles have a fixed ordinal
// ordering (Value < Blend < Growth) used for sorting only.
type Style string

const (
	StyleValue  Style = "Value"
	StyleBlend  Style = "Blend"
	StyleGrowth Style = "Growth"
)

var styleOrdinals = map[Style]int{
	StyleValue:  1,
	StyleBlend:  2,
	StyleGrowth: 3,
}

// Ordinal returns the sort rank of the style. An unset or unknown style ranks
// lowest (0).
func (s Style) Ordinal() int { return styleOrdinals[s] }

// ParseStyle validates a style.
func ParseStyle(s string) (Style, error) {
	if st := Style(s); styleOrdinals[st] != 0 {
		return st, nil
	}
	return "", BadRequestf("unknown style %q", s)
}

// ValidateStock checks the fields of a stock that come from outside the
// process (inserts, snapshot imports).
func ValidateStock(s *Stock) error {
	if s.Ticker == "" {
		return BadRequestf("stock is missing a ticker")
	}
	if s.Name == "" {
		return BadRequestf("stock %s is missing a name", s.Ticker)
	}
	if s.Country != "" && !countries[s.Country] {
		return BadRequestf("stock %s has unknown country %q", s.Ticker, s.Country)
	}
	if s.Industry != "" && !industries[s.Industry] {
		return BadRequestf("stock %s has unknown industry %q", s.Ticker, s.Industry)
	}
	if s.Size != "" && sizeOrdinals[s.Size] == 0 {
		return BadRequestf("stock %s has unknown size %q", s.Ticker, s.Size)
	}
	if s.Style != "" && styleOrdinals[s.Style] == 0 {
		return BadRequestf("stock %s has unknown style %q", s.Ticker, s.Style)
	}
	if s.StarRating != nil && (*s.StarRating < 0 || *s.StarRating > 5) {
		return BadRequestf("stock %s has star rating %d outside 0-5", s.Ticker, *s.StarRating)
	}
	if s.DividendYieldPercent != nil && *s.DividendYieldPercent < 0 {
		return BadRequestf("stock %s has negative dividend yield", s.Ticker)
	}
	if s.PriceEarningRatio != nil && *s.PriceEarningRatio < 0 {
		return BadRequestf("stock %s has negative price/earning ratio", s.Ticker)
	}
	return nil
}
