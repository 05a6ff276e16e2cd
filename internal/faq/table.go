package faq

// defaultEntries is the built-in FAQ corpus. Order matters: the first key
// contained in a question wins.
var defaultEntries = []Entry{
	{Key: "诉讼时效", Answer: "根据《民法典》规定，普通诉讼时效为3年，自权利人知道或应当知道权利被侵害之日起计算。"},
	{Key: "离婚冷静期", Answer: "协议离婚需30天冷静期，期间任一方可撤回。"},
	{Key: "劳动仲裁", Answer: "劳动争议应先申请仲裁，超过仲裁时效将影响权利主张。"},
	{Key: "无效合同", Answer: "违反法律强制性规定的合同无效。"},
	{Key: "担保责任", Answer: "保证人按约承担债务清偿责任。"},
	{Key: "婚前财产", Answer: "婚前个人财产属个人所有，婚后不自动转为共同财产。"},
	{Key: "交通肇事逃逸", Answer: "构成犯罪的将追究刑事责任，并加重处罚。"},
	{Key: "精神损害赔偿", Answer: "人身权益受侵害可依法请求精神损害赔偿。"},
	{Key: "继承顺序", Answer: "第一顺序：配偶、子女、父母；第二顺序：兄弟姐妹、祖父母。"},
	{Key: "居住权", Answer: "自然人可享有在他人住宅中设定的居住使用权。"},
	{Key: "买卖合同", Answer: "买卖合同须明确标的、数量、价格、履行方式等。"},
	{Key: "违约责任", Answer: "一方违约的，应当承担继续履行、赔偿损失等责任。"},
	{Key: "债权转让", Answer: "债权可依法转让，但需通知债务人。"},
	{Key: "不可抗力", Answer: "指不能预见、不能避免且不能克服的客观情况。"},
	{Key: "建设工程质量责任", Answer: "开发商对交付的房屋质量承担保修责任。"},
	{Key: "物权变动", Answer: "物权设立、变更、转让需登记才生效。"},
	{Key: "继承权放弃", Answer: "继承人可书面声明放弃继承。"},
	{Key: "住房公积金提取", Answer: "购房、退休等符合条件可提取公积金。"},
	{Key: "辞退赔偿", Answer: "用人单位违法解除合同须支付赔偿金。"},
	{Key: "试用期", Answer: "试用期最长不超过6个月，包含在劳动合同期限内。"},
	{Key: "工伤认定", Answer: "发生工伤应及时申请认定，并申请赔偿。"},
	{Key: "辞职流程", Answer: "提前30日书面通知或试用期提前3日通知单位。"},
	{Key: "房屋租赁合同", Answer: "应约定租金、期限、押金等，建议签署书面协议。"},
	{Key: "借条有效性", Answer: "借条应载明金额、时间、借款人信息等。"},
	{Key: "法人代表变更", Answer: "需办理工商变更登记，提交相应材料。"},
	{Key: "公司注销", Answer: "需依法进行清算、税务注销、工商登记注销等。"},
	{Key: "辞退孕妇", Answer: "用人单位不得随意解除孕期、产期女员工合同。"},
	{Key: "工资支付周期", Answer: "工资应至少每月支付一次。"},
	{Key: "辞职未批", Answer: "劳动者主动辞职无需单位批准。"},
	{Key: "试用期解雇", Answer: "应说明理由并提前通知，否则属违法解除。"},
	{Key: "工龄计算", Answer: "连续工龄影响年假、补偿金等权益。"},
	{Key: "仲裁期限", Answer: "劳动争议仲裁申请时效为1年。"},
	{Key: "欠薪维权", Answer: "可申请劳动监察或仲裁，依法追讨。"},
	{Key: "入职未签合同", Answer: "应自用工起一个月内签订合同，否则可获双倍工资。"},
	{Key: "离职证明", Answer: "单位应在离职时出具书面离职证明。"},
	{Key: "档案管理", Answer: "应由人社部门或单位代管，不能私自保留。"},
	{Key: "女职工三期", Answer: "怀孕、产假、哺乳期内享受法律特殊保护。"},
	{Key: "公司违法裁员", Answer: "需支付赔偿金，未依法裁员可申诉。"},
	{Key: "劳动报酬争议", Answer: "建议先协商，协商不成可申请仲裁。"},
	{Key: "离婚房产分割", Answer: "婚后财产原则上平均分割，酌情处理。"},
	{Key: "家庭暴力", Answer: "受害者可申请人身保护令，追究施暴者责任。"},
	{Key: "子女抚养权", Answer: "以子女利益最大化为原则，法院综合判定。"},
	{Key: "分居离婚", Answer: "分居满两年视为感情破裂可申请离婚。"},
	{Key: "婚内出轨", Answer: "一般不直接影响财产分割，但可作为辅助因素。"},
	{Key: "起诉离婚", Answer: "需提供证据证明感情破裂，法院判决离婚。"},
	{Key: "协议离婚", Answer: "需双方同意、协议达成、登记手续完备。"},
	{Key: "人身伤害赔偿", Answer: "包括医疗费、误工费、护理费等多项赔偿。"},
	{Key: "交通事故赔偿", Answer: "由交警认定责任，保险先行赔偿。"},
	{Key: "碰瓷责任", Answer: "可通过监控、证人举证证明非责任方。"},
	{Key: "酒驾处罚", Answer: "将被罚款、扣证，严重者构成危险驾驶罪。"},
	{Key: "无证驾驶", Answer: "属于违法行为，将被行政处罚甚至刑拘。"},
	{Key: "车祸逃逸", Answer: "逃逸构成加重情节，可能被追究刑责。"},
	{Key: "网络诈骗", Answer: "涉嫌刑事犯罪，应及时报警并收集证据。"},
	{Key: "电信诈骗", Answer: "被骗后尽快拨打110或96110反诈热线。"},
	{Key: "银行卡被冻结", Answer: "可能因涉嫌异常交易，应与银行或警方联系。"},
	{Key: "隐私泄露", Answer: "可要求平台删除信息并赔偿损失。"},
	{Key: "名誉侵权", Answer: "被诽谤、侮辱可提起民事诉讼要求赔偿。"},
	{Key: "诽谤罪", Answer: "严重侵害他人名誉的，可构成刑事犯罪。"},
	{Key: "图片侵权", Answer: "擅用他人图片构成侵权，应承担责任。"},
	{Key: "著作权", Answer: "原创作品自动享有著作权，侵权将被追责。"},
	{Key: "网络转载", Answer: "应注明来源并获得授权，避免侵权。"},
	{Key: "医疗事故", Answer: "需通过鉴定程序确认责任，依法索赔。"},
	{Key: "工伤赔偿", Answer: "包括医疗费、停工工资、伤残补助等。"},
	{Key: "失业保险", Answer: "符合条件者可申请失业金，享受基本保障。"},
	{Key: "养老保险", Answer: "累计缴满15年可领取退休金。"},
	{Key: "退休年龄", Answer: "男60岁、女干部55岁、女工人50岁。"},
	{Key: "社保转移", Answer: "可在新就业地申请转入原账户。"},
	{Key: "公积金贷款", Answer: "需符合缴纳条件、信用状况良好。"},
	{Key: "征信修复", Answer: "需由信用主体申请，不能伪造或非法代办。"},
	{Key: "非法集资", Answer: "承诺高回报为特征，参与者可能承担风险。"},
	{Key: "民间借贷利率", Answer: "不得超过一年期LPR的4倍，超过部分无效。"},
	{Key: "信用卡逾期", Answer: "将影响征信，情节严重可构成信用卡诈骗罪。"},
	{Key: "合同诈骗", Answer: "虚构合同骗取财物，属于刑事犯罪。"},
	{Key: "遗产税", Answer: "目前我国未开征个人遗产税。"},
	{Key: "赠与撤销", Answer: "赠与合同成立后不得任意撤销，除非受赠人重大过错。"},
	{Key: "非法拘禁", Answer: "限制他人人身自由属于刑事犯罪。"},
	{Key: "正当防卫", Answer: "在合法防卫限度内不负刑事责任。"},
	{Key: "邻里纠纷", Answer: "应协商解决，严重的可报警或提起民事诉讼。"},
	{Key: "强制执行", Answer: "法院生效判决不履行的可申请强制执行。"},
	{Key: "民事调解", Answer: "法院或人民调解委员会可主持调解。"},
	{Key: "违章建筑", Answer: "可依法拆除或责令改正，属行政执法事项。"},
	{Key: "房产继承", Answer: "应公证或凭有效遗嘱办理继承手续。"},
	{Key: "居住证", Answer: "非户籍人口在城市生活的身份证明。"},
	{Key: "遗嘱有效性", Answer: "须符合形式和立遗人真实意思表示。"},
	{Key: "独生子女费", Answer: "可依法领取独生子女父母奖励金。"},
	{Key: "土地征收补偿", Answer: "需依照国家规定给予公平补偿。"},
	{Key: "征地补偿款分配", Answer: "由村集体或村民会议讨论决定。"},
	{Key: "职务犯罪举报", Answer: "可向纪委或监察部门实名举报。"},
	{Key: "财产保全", Answer: "诉前/诉中可申请法院冻结对方财产。"},
	{Key: "电子证据", Answer: "聊天记录、转账截图等均可作为证据提交。"},
	{Key: "合同签字效力", Answer: "只要签字真实有效，合同即具约束力。"},
	{Key: "银行卡盗刷", Answer: "第一时间冻结卡片并报警，银行将协助调查。"},
	{Key: "信息公开", Answer: "政府部门应依法公开信息，接受公众监督。"},
	{Key: "法院起诉流程", Answer: "提交起诉状，法院立案后进入审理程序。"},
	{Key: "执行难", Answer: "法院执行局可申请强制执行，打击“老赖”。"},
	{Key: "社区矫正", Answer: "对轻罪判缓刑人员的非监禁性监管措施。"},
	{Key: "取保候审", Answer: "涉嫌犯罪但不宜羁押的，可以申请取保候审。"},
}
