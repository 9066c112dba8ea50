package gedcom

// GEDCOM 5.5 tags the parser and the relationship queries rely on.
// See https://chronoplexsoftware.com/gedcomvalidator/gedcom/gedcom-5.5.pdf.
const (
	TagIndividual    = "INDI"
	TagFamily        = "FAM"
	TagFamilyChild   = "FAMC"
	TagFamilySpouse  = "FAMS"
	TagHusband       = "HUSB"
	TagWife          = "WIFE"
	TagChild         = "CHIL"
	TagName          = "NAME"
	TagGivenName     = "GIVN"
	TagSurname       = "SURN"
	TagSex           = "SEX"
	TagOccupation    = "OCCU"
	TagBirth         = "BIRT"
	TagDeath         = "DEAT"
	TagMarriage      = "MARR"
	TagDate          = "DATE"
	TagPlace         = "PLAC"
	TagNote          = "NOTE"
	TagContinued     = "CONT"
	TagConcatenation = "CONC"
	TagHeader        = "HEAD"
	TagTrailer       = "TRLR"
)
