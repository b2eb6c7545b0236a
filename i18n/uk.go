package i18n

var UK = Messages{
	"person_not_found":   "Особу %d не знайдено",
	"spot_not_found":     "Мітку %d не знайдено",
	"relation_rejected":  "Зв'язок %s між %d та %d неможливий",
	"relation_not_found": "Між %d та %d немає зв'язку",
	"unknown_relation":   "Невідомий тип зв'язку %s",
	"nothing_to_undo":    "Нічого скасовувати",
	"nothing_to_redo":    "Нічого повторювати",
	"no_file":            "Схему ще не збережено у файл",
	"born":               "нар. %s",
	"died":               "пом. %s",
	"year":               "%d р.",
	"year_bc":            "%d р. до н.е.",
}
