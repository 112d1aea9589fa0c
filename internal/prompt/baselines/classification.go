package baselines

// ClassificationPrompt is the hand-written classification prompt used by
// the manual path. The declarative pipeline does not use it.
var ClassificationPrompt = `You are a customer support classifier. Please analyze this ticket carefully.

Subject: %s
Message: %s

Classify this ticket by determining:
1. Category (Technical, Billing, Sales, Feature_Request)
2. Priority (Critical, High, Medium, Low)
3. Response Type (Troubleshooting, Account_Review, Information, Product_Feedback, Account_Recovery)

Be very careful and accurate. Consider urgency keywords and business impact.

Respond in this exact format:
Category: [category]
Priority: [priority]
Response Type: [response_type]`
