package openai

const filterSystemPrompt = "You extract structured data from text with high precision. " +
	"Only include fields explicitly mentioned in the query."

const filterPromptTemplate = `Extract structured metadata from this assessment search query.
Return a JSON object with these fields ONLY IF they are explicitly mentioned or clearly implied in the query:

- job_levels: array of job level strings (e.g., ["entry level", "mid level", "senior"])
- languages: array of language strings (e.g., ["english", "spanish"])
- min_duration: minimum duration in minutes (integer)
- max_duration: maximum duration in minutes (integer)
- assessment_type: single assessment type string (e.g., "Cognitive")
- adaptive_support: whether adaptive testing is required (boolean)
- remote_support: whether remote delivery is required (boolean)

IMPORTANT INSTRUCTIONS:
- If a field is not mentioned in the query, DO NOT include that field in the JSON response.
- The field values should be exactly as mentioned in the query (don't make up values).
- Remove - from job levels (e.g., "entry-level" -> "entry level").
- If a duration is mentioned without specifying min or max (e.g., "60 minute assessment"), pick the appropriate field.
- The JSON must parse without errors; no trailing commas and no extraneous text outside the object.

EXAMPLES:

Query: "Find Python assessments for senior developers that take less than 60 minutes"
Response: {"job_levels": ["senior"], "languages": ["python"], "max_duration": 60}

Query: "Show me all assessments"
Response: {}

Query: "Assessments longer than 45 minutes"
Response: {"min_duration": 45}

Query: "Remote cognitive assessments for entry-level candidates"
Response: {"job_levels": ["entry level"], "assessment_type": "Cognitive", "remote_support": true}

Query: %q

JSON:`

const minutesPromptTemplate = `Extract only the number of minutes from the following assessment length description.
Return only a single integer number.

Assessment Length: %q

Minutes:`

const languagesPromptTemplate = `Extract a list of languages from the following text.
Remove any regional indicators like "(USA)" or "(International)".
Return only a JSON array of language names.
Note: Strictly convert every language to lower case, e.g. "English (USA)" should be "english".

Languages: %q

JSON array:`

const jobLevelsPromptTemplate = `Extract a list of job levels from the following text.
Return only a JSON array of job level names.

Job Levels: %q

JSON array:`

const assessmentTypePromptTemplate = `Extract only the assessment type from the following text.
Return only a single string.

example:
- Description: "This is a cognitive assessment."
- Assessment Type: "Cognitive"

Assessment Type: %q

Assessment Type:`

const supportFlagPromptTemplate = `Extract only the %s information from the following text.
Return only boolean 0 or 1.

example:
- Description: "This assessment supports %s."
- %s: 1

%s: %q

%s:`
