package config

import "github.com/abelbrown/tensionwatch/internal/signal"

// DefaultKeywords returns the compiled-in keyword dictionaries. These
// mirror the shipped YAML dictionaries and are used when no override
// directory is supplied.
func DefaultKeywords() *Keywords {
	return &Keywords{
		Categories: map[signal.Category]LangKeywords{
			signal.CategoryDiplomatic: {
				EN: []string{
					"ambassador", "embassy", "consulate", "diplomatic",
					"foreign minister", "envoy", "summit", "bilateral talks",
					"persona non grata", "consular",
				},
				ZH: []string{"大使", "外交", "领事馆", "峰会", "会谈", "特使", "使馆"},
			},
			signal.CategoryTrade: {
				EN: []string{
					"tariff", "tariffs", "export", "import", "trade",
					"canola", "soybean", "wto", "trade war", "supply chain",
					"customs", "quota",
				},
				ZH: []string{"关税", "贸易", "出口", "进口", "油菜籽", "大豆", "世贸", "海关"},
			},
			signal.CategoryMilitary: {
				EN: []string{
					"military", "navy", "pla", "missile", "defence", "defense",
					"warship", "fighter jet", "troops", "taiwan strait",
					"air force", "drill",
				},
				ZH: []string{"军事", "军队", "海军", "导弹", "国防", "军舰", "演习", "战机"},
			},
			signal.CategoryTechnology: {
				EN: []string{
					"huawei", "semiconductor", "chip", "5g", "cyber",
					"artificial intelligence", "quantum", "telecom", "tiktok",
					"data security",
				},
				ZH: []string{"华为", "半导体", "芯片", "网络安全", "人工智能", "量子", "电信"},
			},
			signal.CategoryPolitical: {
				EN: []string{
					"election", "parliament", "minister", "policy",
					"government", "legislation", "cabinet", "party congress",
				},
				ZH: []string{"选举", "议会", "部长", "政策", "政府", "政党", "人大"},
			},
			signal.CategoryEconomic: {
				EN: []string{
					"economy", "gdp", "investment", "market", "stock",
					"inflation", "currency", "yuan", "recession", "bank",
				},
				ZH: []string{"经济", "投资", "市场", "股市", "通胀", "人民币", "银行"},
			},
			signal.CategorySocial: {
				EN: []string{
					"diaspora", "community", "student", "visa", "immigration",
					"tourism", "culture", "discrimination",
				},
				ZH: []string{"侨民", "社区", "留学生", "签证", "移民", "旅游", "文化"},
			},
			signal.CategoryLegal: {
				EN: []string{
					"court", "lawsuit", "extradition", "trial", "charged",
					"verdict", "appeal", "ruling", "indictment",
				},
				ZH: []string{"法院", "诉讼", "引渡", "审判", "起诉", "判决", "上诉"},
			},
		},
		Modifiers: map[string]Modifier{
			ModifierEscalation: {
				EN: []string{
					"sanctions", "expelled", "detention", "detained",
					"arrest", "confrontation", "crisis", "retaliation",
					"ban", "blockade", "espionage", "seized",
				},
				ZH: []string{"制裁", "驱逐", "拘留", "逮捕", "危机", "报复", "禁令", "间谍"},
				Weight: 3,
			},
			ModifierModerateEscalation: {
				EN: []string{
					"tensions", "dispute", "protest", "warning",
					"investigation", "restrictions", "summoned", "suspend",
				},
				ZH: []string{"紧张", "争端", "抗议", "警告", "调查", "限制", "召见"},
				Weight: 2,
			},
			ModifierDeEscalation: {
				EN: []string{
					"agreement", "cooperation", "dialogue", "resume",
					"resumed", "normalized", "thaw", "goodwill", "released",
					"lifted",
				},
				ZH: []string{"协议", "合作", "对话", "恢复", "缓和", "释放", "解除"},
				Weight: -2,
			},
		},
		Entities: map[string]LangKeywords{
			"xi_jinping": {
				EN: []string{"Xi Jinping", "President Xi"},
				ZH: []string{"习近平"},
			},
			"wang_yi": {
				EN: []string{"Wang Yi"},
				ZH: []string{"王毅"},
			},
			"two_michaels": {
				EN: []string{"Two Michaels", "Michael Kovrig", "Michael Spavor"},
				ZH: []string{"两名迈克尔", "康明凯"},
			},
			"mofcom": {
				EN: []string{"MOFCOM", "Ministry of Commerce"},
				ZH: []string{"商务部"},
			},
			"mfa": {
				EN: []string{"Ministry of Foreign Affairs", "MFA spokesperson"},
				ZH: []string{"外交部"},
			},
			"csis": {
				EN: []string{"CSIS", "Canadian Security Intelligence Service"},
				ZH: []string{"加拿大安全情报局"},
			},
			"ufwd": {
				EN: []string{"United Front", "UFWD"},
				ZH: []string{"统战部", "统一战线"},
			},
			"mss": {
				EN: []string{"Ministry of State Security", "MSS"},
				ZH: []string{"国家安全部"},
			},
			"huawei": {
				EN: []string{"Huawei"},
				ZH: []string{"华为"},
			},
			"canola": {
				EN: []string{"canola", "oilseed"},
				ZH: []string{"油菜籽", "菜籽"},
			},
			"rare_earths": {
				EN: []string{"rare earth", "gallium", "germanium"},
				ZH: []string{"稀土", "镓", "锗"},
			},
			"softwood_lumber": {
				EN: []string{"softwood lumber"},
				ZH: []string{"软木"},
			},
		},
	}
}
