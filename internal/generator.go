package internal

// DefaultSystemPrompt is the instruction placed in every generated record
const DefaultSystemPrompt = "Sen Searcho AI araştırma planlaması asistanısın. Kullanıcının araştırma talebini analiz et ve yapılandırılmış bir araştırma planı oluştur. SADECE JSON formatında yanıt ver."

// BuildCompleteRecord creates a system/user/assistant record whose assistant
// content is the JSON-encoded research plan. Sections are not validated.
func BuildCompleteRecord(systemPrompt, userMessage, chatResponse, title string, sections []Section) Record {
	resp := PlanResponse{
		ChatResponse: chatResponse,
		ResearchPlan: ResearchPlan{
			Title:    title,
			Sections: sections,
		},
	}
	// only strings and string slices, encoding cannot fail
	content, _ := resp.Encode()

	return Record{
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
			{Role: RoleAssistant, Content: content},
		},
	}
}

// BuildPromptOnlyRecord creates a system/user record with no assistant turn,
// left for reward-based fine-tuning to complete.
func BuildPromptOnlyRecord(systemPrompt, userMessage string) Record {
	return Record{
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
	}
}
