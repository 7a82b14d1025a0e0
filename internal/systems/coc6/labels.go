package coc6

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Label holds the display names of one rule-table key per locale.
type Label struct {
	EN string
	JA string
}

var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.Japanese,
}

var (
	matcherOnce sync.Once
	matcher     language.Matcher
)

// LabelFor returns the display name of a rule-table key for the requested
// locale, resolved with BCP 47 matching. Keys without a Japanese label fall
// back to English (abbreviations like STR are universal).
func LabelFor(key, locale string) string {
	label, ok := labels[key]
	if !ok {
		return key
	}

	matcherOnce.Do(func() {
		matcher = language.NewMatcher(supportedLocales)
	})
	_, index, _ := matcher.Match(language.Make(strings.TrimSpace(locale)))
	if index == 1 && label.JA != "" {
		return label.JA
	}
	return label.EN
}

var labels = map[string]Label{
	// Profile fields
	"occupation": {EN: "Occupation", JA: "職業"},
	"age":        {EN: "Age", JA: "年齢"},
	"sex":        {EN: "Sex", JA: "性別"},
	"height":     {EN: "Height", JA: "身長"},
	"weight":     {EN: "Weight", JA: "体重"},
	"hometown":   {EN: "Home Town", JA: "出身"},
	"hair":       {EN: "Hair Color", JA: "髪の色"},
	"eye":        {EN: "Eye Color", JA: "瞳の色"},
	"skin":       {EN: "Skin Color", JA: "肌の色"},

	// Parameters
	"str": {EN: "STR"},
	"con": {EN: "CON"},
	"pow": {EN: "POW"},
	"dex": {EN: "DEX"},
	"app": {EN: "APP"},
	"siz": {EN: "SIZ"},
	"int": {EN: "INT"},
	"edu": {EN: "EDU"},
	"wlt": {EN: "WLT"},

	// Attributes and properties
	"san":    {EN: "SAN", JA: "正気度"},
	"luk":    {EN: "Luck", JA: "幸運"},
	"ida":    {EN: "Idea", JA: "アイデア"},
	"knw":    {EN: "Knowledge", JA: "知識"},
	"hp":     {EN: "HP", JA: "耐久力"},
	"mp":     {EN: "MP", JA: "マジックポイント"},
	"jobpts": {EN: "Job Points", JA: "職業技能ポイント"},
	"hbypts": {EN: "Hobby Points", JA: "趣味技能ポイント"},
	"db":     {EN: "Damage Bonus", JA: "ダメージボーナス"},

	"san-abbrev":    {EN: "SAN"},
	"luk-abbrev":    {EN: "LUK", JA: "幸運"},
	"ida-abbrev":    {EN: "IDA", JA: "ｱｲﾃﾞｱ"},
	"knw-abbrev":    {EN: "KNW", JA: "知識"},
	"hp-abbrev":     {EN: "HP"},
	"mp-abbrev":     {EN: "MP"},
	"jobpts-abbrev": {EN: "Job", JA: "職業P"},
	"hbypts-abbrev": {EN: "Hby", JA: "趣味P"},
	"db-abbrev":     {EN: "DB"},

	// Skill categories
	"combat":      {EN: "Combat Skills", JA: "戦闘技能"},
	"search":      {EN: "Search Skills", JA: "探索技能"},
	"action":      {EN: "Action Skills", JA: "行動技能"},
	"negotiation": {EN: "Negotiation Skills", JA: "交渉技能"},
	"knowledge":   {EN: "Knowledge Skills", JA: "知識技能"},

	// Combat skills
	"dodge":      {EN: "Dodge", JA: "回避"},
	"fist":       {EN: "Fist", JA: "こぶし"},
	"grapple":    {EN: "Grapple", JA: "組み付き"},
	"head":       {EN: "Head", JA: "頭突き"},
	"kick":       {EN: "Kick", JA: "キック"},
	"martial":    {EN: "Martial Arts", JA: "マーシャルアーツ"},
	"throw":      {EN: "Throw", JA: "投擲"},
	"handgun":    {EN: "Handgun", JA: "拳銃"},
	"machinegun": {EN: "Machine Gun", JA: "マシンガン"},
	"rifle":      {EN: "Rifle", JA: "ライフル"},
	"shotgun":    {EN: "Shotgun", JA: "ショットガン"},
	"smg":        {EN: "SMG", JA: "サブマシンガン"},

	// Search skills
	"spot":           {EN: "Spot Hidden", JA: "目星"},
	"listen":         {EN: "Listen", JA: "聞き耳"},
	"library":        {EN: "Library Use", JA: "図書館"},
	"firstaid":       {EN: "First Aid", JA: "応急手当"},
	"hide":           {EN: "Hide", JA: "隠れる"},
	"conceal":        {EN: "Conceal", JA: "隠す"},
	"disguise":       {EN: "Disguise", JA: "変装"},
	"sneak":          {EN: "Sneak", JA: "忍び歩き"},
	"track":          {EN: "Track", JA: "追跡"},
	"navigate":       {EN: "Navigate", JA: "ナビゲート"},
	"photography":    {EN: "Photography", JA: "写真術"},
	"lockpick":       {EN: "Lock Pick", JA: "鍵開け"},
	"psychoanalysis": {EN: "Psychoanalysis", JA: "精神分析"},

	// Action skills
	"climb":        {EN: "Climb", JA: "登攀"},
	"jump":         {EN: "Jump", JA: "跳躍"},
	"drive":        {EN: "Drive", JA: "運転"},
	"pilot":        {EN: "Pilot", JA: "操縦"},
	"oprhvymch":    {EN: "Opr. Hvy. Mch.", JA: "重機械操作"},
	"repairmch":    {EN: "Mech. Repair", JA: "機械修理"},
	"repairelectr": {EN: "Electr. Repair", JA: "電気修理"},
	"craft":        {EN: "Craft", JA: "製作"},
	"art":          {EN: "Art", JA: "芸術"},
	"ride":         {EN: "Ride", JA: "乗馬"},
	"swim":         {EN: "Swim", JA: "水泳"},

	// Negotiation skills
	"fasttalk":    {EN: "Fasttalk", JA: "言いくるめ"},
	"trust":       {EN: "Trust", JA: "信用"},
	"persuade":    {EN: "Persuade", JA: "説得"},
	"bargain":     {EN: "Bargain", JA: "値切り"},
	"nativelang":  {EN: "Native Lang.", JA: "母国語"},
	"foreignlang": {EN: "Foreign Lang.", JA: "異国語"},

	// Knowledge skills
	"cthulhu":      {EN: "Cthulhu", JA: "クトゥルフ神話"},
	"psychology":   {EN: "Psychology", JA: "心理学"},
	"occult":       {EN: "Occult", JA: "オカルト"},
	"history":      {EN: "History", JA: "歴史"},
	"law":          {EN: "Law", JA: "法律"},
	"accouting":    {EN: "Accouting", JA: "経理"},
	"anthropology": {EN: "Anthropology", JA: "人類学"},
	"archaeology":  {EN: "Archaeology", JA: "考古学"},
	"natural":      {EN: "Natural History", JA: "博物学"},
	"medicine":     {EN: "Medicine", JA: "医学"},
	"pharmacy":     {EN: "Pharmacy", JA: "薬学"},
	"chemistry":    {EN: "Chemistry", JA: "化学"},
	"biology":      {EN: "Biology", JA: "生物学"},
	"computer":     {EN: "Computer", JA: "コンピューター"},
	"electronics":  {EN: "Electronics", JA: "電子工学"},
	"physics":      {EN: "Physics", JA: "物理学"},
	"astronomy":    {EN: "Astronomy", JA: "天文学"},
	"geology":      {EN: "Geology", JA: "地質学"},
}
