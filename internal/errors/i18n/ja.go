package i18n

var jaCatalog = NewCatalog("ja", map[Code]string{
	CodeUnknown:  "予期しないエラーが発生しました",
	CodeNotFound: "ID '{{.ID}}' のキャラクターは存在しません",

	CodePermissionDenied: "ID '{{.ID}}' のキャラクターのパスワードが違います",

	CodeSystemUnknown:    "不明なゲームシステム '{{.System}}' です",
	CodeCharacterEmptyID: "キャラクターIDを入力してください",
	CodeCharacterInvalid: "キャラクターのデータが不正です",

	CodeRulesUnknownDependency: "ルール '{{.Key}}' が不明な能力値 '{{.Dependency}}' を参照しています",
	CodeRulesUnknownParameter:  "不明な能力値 '{{.Key}}' です",
	CodeRulesDuplicateKey:      "ルールキー '{{.Key}}' が重複しています",

	CodeDiceInvalidSides: "ダイスの面数が不正です",
	CodeDiceNotSettled:   "ダイスがまだ回転中です",
})

func init() {
	RegisterCatalog("ja", jaCatalog)
}
