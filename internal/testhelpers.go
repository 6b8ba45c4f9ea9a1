package internal

// CreateTestSections returns a small valid plan body
func CreateTestSections() []Section {
	return []Section{
		{
			ID:    "usage",
			Title: "Kullanım Alışkanlıkları",
			Questions: []string{
				"Uygulamayı ne sıklıkla kullanıyorsunuz?",
				"En çok hangi özelliği kullanıyorsunuz?",
				"Kullanımı zorlaştıran bir durum var mı?",
			},
		},
		{
			ID:    "improvements",
			Title: "İyileştirme Önerileri",
			Questions: []string{
				"Neyin değişmesini istersiniz?",
				"Eksik gördüğünüz bir özellik var mı?",
				"Rakip uygulamalarla nasıl karşılaştırırsınız?",
			},
		},
	}
}

// CreateTestRecord creates a complete record for userMessage
func CreateTestRecord(userMessage string) Record {
	return BuildCompleteRecord(DefaultSystemPrompt, userMessage, "Planı hazırladım.", "Test Araştırması", CreateTestSections())
}

// CreateTestPromptRecord creates a prompt-only record for userMessage
func CreateTestPromptRecord(userMessage string) Record {
	return BuildPromptOnlyRecord(DefaultSystemPrompt, userMessage)
}

// CreateTestUserRecord creates a record holding a single user message
func CreateTestUserRecord(userMessage string) Record {
	return Record{Messages: []Message{{Role: RoleUser, Content: userMessage}}}
}

// UserMessages returns the first user message of each record
func UserMessages(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		msg, _ := r.FirstUserMessage()
		out = append(out, msg)
	}
	return out
}
