package i18n

var JA = Messages{
	"person_not_found":   "人物 %d が見つかりません",
	"spot_not_found":     "スポット %d が見つかりません",
	"relation_rejected":  "%[2]d と %[3]d の間に関係 %[1]s は作れません",
	"relation_not_found": "%d と %d の間に関係はありません",
	"unknown_relation":   "不明な関係 %s",
	"nothing_to_undo":    "元に戻す操作はありません",
	"nothing_to_redo":    "やり直す操作はありません",
	"no_file":            "家系図はまだファイルに保存されていません",
	"born":               "%s 生",
	"died":               "%s 没",
	"year":               "%d年",
	"year_bc":            "前%d年",
}
