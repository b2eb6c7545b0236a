package i18n

var RU = Messages{
	"person_not_found":   "Человек %d не найден",
	"spot_not_found":     "Метка %d не найдена",
	"relation_rejected":  "Связь %s между %d и %d невозможна",
	"relation_not_found": "Между %d и %d нет связи",
	"unknown_relation":   "Неизвестный тип связи %s",
	"nothing_to_undo":    "Нечего отменять",
	"nothing_to_redo":    "Нечего повторять",
	"no_file":            "Схема ещё не сохранена в файл",
	"born":               "род. %s",
	"died":               "ум. %s",
	"year":               "%d г.",
	"year_bc":            "%d г. до н.э.",
}
