package extension

import (
	"fmt"
	"strings"
	"unicode"
)

// Canned templates returned by the code generator. These are wire
// constants: hosts compare against them, so the text is reproduced
// verbatim, escapes included.
const webAPITemplate = `# Web API Implementation
from flask import Flask, jsonify, request

app = Flask(__name__)

@app.route('/api/data', methods=['GET'])
def get_data():
    """Get sample data"""
    return jsonify({"message": "Hello from Flask API"})

@app.route('/api/data', methods=['POST'])
def post_data():
    """Post data to API"""
    data = request.get_json()
    return jsonify({"received": data, "status": "success"})

if __name__ == '__main__':
    app.run(debug=True)`

const dataAnalysisTemplate = `# Data Analysis Script
import pandas as pd
import matplotlib.pyplot as plt

def analyze_data(file_path):
    """Analyze data from a CSV file"""
    try:
        df = pd.read_csv(file_path)
        print(f"Data shape: {df.shape}")
        print(f"Columns: {list(df.columns)}")
        print("\nFirst 5 rows:")
        print(df.head())
        return df
    except Exception as e:
        print(f"Error reading data: {e}")
        return None

def visualize_data(df, column_name):
    """Create a simple visualization"""
    if column_name in df.columns:
        plt.figure(figsize=(10, 6))
        df[column_name].hist()
        plt.title(f'Distribution of {column_name}')
        plt.xlabel(column_name)
        plt.ylabel('Frequency')
        plt.show()
    else:
        print(f"Column {column_name} not found")

# Example usage
# df = analyze_data('data.csv')
# visualize_data(df, 'value')`

const genericScriptTemplate = `# Generic Python Script
def main():
    """Main function"""
    print("Hello from Neonmachines!")
    # Your code here
    pass

if __name__ == "__main__":
    main()`

const (
	webAPIExplanation        = "Generated a Flask web API with GET and POST endpoints"
	dataAnalysisExplanation  = "Generated a data analysis script using pandas and matplotlib"
	genericScriptExplanation = "Generated a basic Python script template"
)

// GenerateCode selects a template keyed by keyword matching on the
// specification. Matching is case-insensitive substring search,
// first-match-wins: web/api, then data/analysis, then the generic script.
// Non-python languages get a placeholder embedding the language name and
// the original specification.
func GenerateCode(req Request) Response {
	if req.Specification == "" {
		return ErrorResponse("Specification is required")
	}

	language := req.LanguageOrDefault()
	if !strings.EqualFold(language, "python") {
		code := fmt.Sprintf("# %s code placeholder\\n# Specification: %s", capitalize(language), req.Specification)
		return CodeResponse(code, fmt.Sprintf("Generated placeholder code for %s", language))
	}

	spec := strings.ToLower(req.Specification)
	switch {
	case strings.Contains(spec, "web") || strings.Contains(spec, "api"):
		return CodeResponse(webAPITemplate, webAPIExplanation)
	case strings.Contains(spec, "data") || strings.Contains(spec, "analysis"):
		return CodeResponse(dataAnalysisTemplate, dataAnalysisExplanation)
	default:
		return CodeResponse(genericScriptTemplate, genericScriptExplanation)
	}
}

// capitalize matches Python str.capitalize: first rune upper, rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
