package dispatch

import "strings"

// ContractTemplate is a base document template seeded by a contract-type
// keyword match. Bodies are starting points; the generation layer customizes
// them from the user's description.
type ContractTemplate struct {
	ContractType string
	Body         string
}

// TemplateRegistry maps contract-type keywords to templates in a fixed order
// for deterministic first-match selection.
type TemplateRegistry struct {
	templates []ContractTemplate
}

// NewTemplateRegistry returns the built-in contract template registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: defaultTemplates}
}

// Match returns the first template whose contract type the question contains.
func (r *TemplateRegistry) Match(question string) (ContractTemplate, bool) {
	for _, t := range r.templates {
		if strings.Contains(question, t.ContractType) {
			return t, true
		}
	}
	return ContractTemplate{}, false
}

// Types returns the supported contract types in registry order.
func (r *TemplateRegistry) Types() []string {
	types := make([]string, len(r.templates))
	for i, t := range r.templates {
		types[i] = t.ContractType
	}
	return types
}

var defaultTemplates = []ContractTemplate{
	{ContractType: "租赁合同", Body: `# 房屋租赁合同

**甲方（出租方）：** _______________
**乙方（承租方）：** _______________

根据《民法典》相关规定，甲乙双方在平等自愿基础上达成如下协议：

## 第一条 租赁房屋情况
房屋地址、建筑面积、房屋用途：_____________________

## 第二条 租赁期限
自____年____月____日起至____年____月____日止。

## 第三条 租金及支付方式
月租金人民币____元，支付方式：_____________________

## 第四条 押金
押金金额人民币____元。

## 第五条 双方权利义务
甲方应保证房屋符合居住条件，乙方应按时支付租金并合理使用房屋。

## 第六条 违约责任
任何一方违约，应承担相应法律责任。

## 第七条 争议解决
本合同争议由房屋所在地法院管辖。`},
	{ContractType: "买卖合同", Body: `# 买卖合同

**甲方（出卖方）：** _______________
**乙方（买受方）：** _______________

根据《民法典》相关规定，双方达成如下协议：

## 第一条 标的物
名称、规格、数量：_____________________

## 第二条 价款及支付方式
总价款人民币____元，支付方式：_____________________

## 第三条 交付
交付时间、地点、方式：_____________________

## 第四条 质量验收
乙方应在收货后____日内验收并提出异议。

## 第五条 违约责任
一方违约的，应当承担继续履行、赔偿损失等责任。

## 第六条 争议解决
协商不成的，提交合同签订地法院管辖。`},
	{ContractType: "借款合同", Body: `# 借款合同

**甲方（出借人）：** _______________
**乙方（借款人）：** _______________

## 第一条 借款金额
人民币（大写）____________元。

## 第二条 借款期限
自____年____月____日起至____年____月____日止。

## 第三条 借款利率
年利率____%，不超过一年期LPR的4倍。

## 第四条 还款方式
_____________________

## 第五条 违约责任
乙方逾期还款的，应按约定支付逾期利息。

## 第六条 争议解决
本合同争议由出借人住所地法院管辖。`},
	{ContractType: "劳动合同", Body: `# 劳动合同

**甲方（用人单位）：** _______________
**乙方（劳动者）：** _______________

根据《劳动合同法》及相关规定，双方达成如下协议：

## 第一条 合同期限
自____年____月____日起至____年____月____日止，其中试用期____个月。

## 第二条 工作内容和地点
岗位、职责、工作地点：_____________________

## 第三条 劳动报酬
月工资人民币____元，每月____日前支付。

## 第四条 社会保险
甲方依法为乙方缴纳社会保险费。

## 第五条 合同解除
双方解除或终止合同按《劳动合同法》有关规定执行。

## 第六条 争议解决
发生劳动争议的，可向劳动争议仲裁委员会申请仲裁。`},
	{ContractType: "服务合同", Body: `# 服务合同

**甲方（委托方）：** _______________
**乙方（服务方）：** _______________

## 第一条 服务内容
服务范围、标准、期限：_____________________

## 第二条 服务费用
费用总额人民币____元，支付方式：_____________________

## 第三条 双方权利义务
甲方应按约支付费用并提供必要配合，乙方应按约定标准提供服务。

## 第四条 保密条款
双方对履行合同过程中知悉的对方商业秘密负有保密义务。

## 第五条 违约责任
一方违约给对方造成损失的，应当赔偿损失。

## 第六条 争议解决
协商不成的，提交甲方住所地法院管辖。`},
}
