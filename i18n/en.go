package i18n

var EN = Messages{
	"person_not_found":   "Person %d not found",
	"spot_not_found":     "Spot %d not found",
	"relation_rejected":  "Relation %s between %d and %d is not possible",
	"relation_not_found": "There is no relation between %d and %d",
	"unknown_relation":   "Unknown relation kind %s",
	"nothing_to_undo":    "Nothing to undo",
	"nothing_to_redo":    "Nothing to redo",
	"no_file":            "Chart is not saved to a file yet",
	"born":               "b. %s",
	"died":               "d. %s",
	"year":               "%d",
	"year_bc":            "%d BC",
}
