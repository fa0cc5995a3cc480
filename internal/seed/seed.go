// Package seed holds the default content written to empty storage
// slots the first time a collection is read.
package seed

import "studio/internal/models"

// Author is the site owner, stamped onto seed content and onto every
// record created without an explicit author.
const Author = "Venkatesh S."

// Posts returns the default blog posts for a fresh installation.
func Posts() []models.Post {
	return []models.Post{
		{
			ID:       "1",
			Slug:     "understanding-llms",
			Title:    "Understanding Large Language Models",
			Category: "ai-news",
			Content: `
# Understanding Large Language Models

Large Language Models (LLMs) are a type of artificial intelligence (AI) model capable of processing and generating human-like text. They are trained on massive datasets of text and code, enabling them to understand context, answer questions, write essays, translate languages, and much more.

## Key Concepts

*   **Transformer Architecture:** Most modern LLMs are based on the transformer architecture, which uses attention mechanisms to weigh the importance of different words in a sequence.
*   **Pre-training & Fine-tuning:** LLMs are typically pre-trained on a vast corpus of general text and then fine-tuned on more specific datasets for particular tasks.
*   **Prompt Engineering:** The art of crafting effective input prompts to guide LLMs to produce desired outputs.

Checkout this image:
![An abstract representation of AI concepts](https://picsum.photos/seed/llm-content/600/300)

<p>LLMs represent a significant advancement in natural language processing and have wide-ranging applications across industries.</p>
`,
			Excerpt:    "Short summary about LLMs and their growing importance in the field of AI.",
			CoverImage: "https://picsum.photos/seed/llm/400/200",
			ImageHint:  "abstract ai",
			Published:  true,
			Date:       "2024-07-28",
			Author:     Author,
			Tags:       []string{"LLM", "AI", "NLP"},
		},
		{
			ID:       "2",
			Slug:     "tfjs-tutorial",
			Title:    "Getting Started with TensorFlow.js",
			Category: "tutorials",
			Content: `
# Getting Started with TensorFlow.js

This tutorial will guide you through setting up your first TensorFlow.js project. TensorFlow.js is an open-source library that allows you to define, train, and run machine learning models directly in the browser or Node.js.

## Step 1: Setup

First, include the TensorFlow.js library in your HTML file:

` + "```html" + `
<script src="https://cdn.jsdelivr.net/npm/@tensorflow/tfjs@latest/dist/tf.min.js"></script>
` + "```" + `

Or install it via npm:
` + "```bash" + `
npm install @tensorflow/tfjs
` + "```" + `

## Step 2: Define a Model

Here's a simple example of defining a sequential model:

` + "```javascript" + `
// Define a simple sequential model
const model = tf.sequential();
model.add(tf.layers.dense({units: 1, inputShape: [1]}));

// Compile the model
model.compile({loss: 'meanSquaredError', optimizer: 'sgd'});
` + "```" + `
<p>This is a very basic introduction. Explore the official documentation for more advanced features!</p>
`,
			Excerpt:    "A beginner-friendly guide to TensorFlow.js for web developers looking to run ML in the browser.",
			CoverImage: "https://picsum.photos/seed/tfjs/400/200",
			ImageHint:  "code computer",
			Published:  false,
			Date:       "2024-07-25",
			Author:     Author,
			Tags:       []string{"TensorFlow.js", "JavaScript", "Machine Learning"},
		},
		{
			ID:       "3",
			Slug:     "ai-in-healthcare",
			Title:    "AI in Healthcare: A Case Study",
			Category: "case-studies",
			Content: `
# AI in Healthcare: A Case Study

This post explores a real-world case study of AI application in diagnosing diseases, specifically focusing on retinal image analysis for diabetic retinopathy.

## The Challenge

Diabetic retinopathy is a leading cause of blindness. Early detection through regular retinal screenings is crucial, but manual analysis by ophthalmologists is time-consuming and resource-intensive.

## The AI Solution

An AI model, typically a Convolutional Neural Network (CNN), was trained on a large dataset of retinal images labeled by severity of diabetic retinopathy.

*   **Data Collection:** High-resolution retinal images.
*   **Preprocessing:** Image normalization, augmentation.
*   **Model Training:** Using a CNN architecture like ResNet or Inception.
*   **Validation:** Testing on an independent dataset and comparing with expert ophthalmologists.

### Results
The AI model achieved a diagnostic accuracy comparable to human experts, significantly reducing the time taken for analysis.

<p>This case study highlights how AI can augment medical professionals, improve efficiency, and make healthcare more accessible.</p>
`,
			Excerpt:    "How AI is transforming diagnostics and patient care, focusing on a diabetic retinopathy case study.",
			CoverImage: "https://picsum.photos/seed/aihealth/400/200",
			ImageHint:  "medical tech",
			Published:  true,
			Date:       "2024-07-22",
			Author:     Author,
			Tags:       []string{"AI", "Healthcare", "Case Study", "CNN"},
		},
		{
			ID:       "4",
			Slug:     "future-of-generative-ai",
			Title:    "The Future of Generative AI",
			Category: "ai-news",
			Content: `
# The Future of Generative AI

This is the full content for 'The Future of Generative AI'. It explores upcoming trends and impacts of generative AI models across industries.

Generative AI is rapidly evolving...

## Key Trends
*   Trend 1: Increased model capabilities and accessibility.
*   Trend 2: Integration into various software and platforms.
*   Trend 3: Ethical considerations and responsible AI development becoming paramount.

<p>This is an image embedded using an HTML img tag:</p>
<img src="https://picsum.photos/seed/blogdetail1/800/400" alt="Futuristic AI" style="width:100%;border-radius:8px;margin-top:1rem;margin-bottom:1rem;" data-ai-hint="futuristic ai" />

### Conclusion
The future is exciting and full of possibilities! We anticipate more personalized and sophisticated AI applications.
`,
			Excerpt:    "Exploring upcoming trends and impacts of generative AI models.",
			CoverImage: "https://picsum.photos/seed/genai/400/250",
			ImageHint:  "futuristic ai",
			Published:  true,
			Date:       "2024-07-28",
			Author:     Author,
			Tags:       []string{"Generative AI", "Future Tech", "Machine Learning"},
		},
	}
}

// Projects returns the default portfolio projects.
func Projects() []models.Project {
	return []models.Project{
		{
			ID:          "proj-1",
			Slug:        "allagash-brewing-data-analysis",
			Title:       "Data Analysis for Allagash Brewing Company",
			Description: "<p>Led a data analysis project to <strong>optimize packaging strategies</strong> by analyzing sales trends. The insights derived helped in better inventory management and targeted marketing for seasonal products.</p>",
			Problem:     "<p>The primary challenge was inefficient packaging leading to potential revenue loss and high inventory holding costs for less popular SKUs. Sales data was available but not effectively utilized for demand forecasting of specific pack sizes.</p>",
			Tools:       []string{"Data Analysis", "Sales Trend Analysis", "Inventory Optimization", "Python", "Pandas"},
			Outcome:     "<p>Achieved a <strong>20% increase in taproom revenue</strong> by aligning packaging with demand. Identified a 15% higher demand for seasonal to-go packs, leading to reduced waste and better stock rotation. The project provided a clear framework for data-driven decision making in packaging.</p>",
			ImageURL:    "https://picsum.photos/seed/allagash/400/250",
			ImageHint:   "brewery data analytics",
			Published:   true,
			Date:        "2023-05-15",
			Author:      Author,
			Tags:        []string{"Data Analysis", "Optimization", "Retail"},
		},
		{
			ID:          "proj-2",
			Slug:        "ml-cardiac-surgery-prediction",
			Title:       "ML for Adverse Events after Cardiac Surgery",
			Description: "<p>Developed and validated machine learning models to <strong>predict complications</strong> such as kidney failure after cardiac surgery. This involved working with sensitive medical data and ensuring model interpretability.</p>",
			Problem:     "<p>Early and accurate prediction of post-operative complications is crucial for timely intervention and improved patient outcomes. Existing models lacked desired precision for specific high-risk cohorts.</p>",
			Tools:       []string{"Machine Learning", "Predictive Modeling", "Python", "Scikit-learn", "Healthcare Analytics"},
			Outcome:     "<p>The developed models demonstrated <strong>improved prediction accuracy by 12%</strong> compared to the national STS model. This enables better resource allocation for high-risk patients and has the potential to significantly reduce adverse event rates.</p>",
			ImageURL:    "https://picsum.photos/seed/cardiacml/400/250",
			ImageHint:   "medical technology machine learning",
			Published:   true,
			Date:        "2023-09-20",
			Author:      Author,
			Tags:        []string{"Machine Learning", "Healthcare", "Predictive Analytics"},
		},
	}
}

// About returns the default about-page content.
func About() models.AboutContent {
	return models.AboutContent{
		ID: models.AboutContentID,
		MainText: `<p>Hello! I'm Venkatesh Shivandi, an Applied Machine Intelligence professional with a passion for leveraging AI to solve real-world challenges and drive impactful change. My journey in AI is fueled by a deep curiosity and a commitment to continuous learning.</p>
<p>With a Master's in Applied Machine Intelligence from Northeastern University (GPA: 3.94) and hands-on experience in roles spanning AI development, software engineering, and data science, I've honed a versatile skill set. I specialize in developing robust machine learning models, optimizing complex systems, and translating data into actionable insights.</p>
<p>My expertise includes Python, SQL, NoSQL, and cloud platforms like AWS and Azure. I'm proficient in tools like Power BI, Tableau, and various machine learning libraries. I'm also a Microsoft Certified Azure Data Engineer Associate.</p>
<p>I thrive in collaborative environments, leading cross-functional teams and spearheading innovation. My goal is to not only build advanced AI solutions but also to mentor and inspire others in the field.</p>`,
		ImageURL:  "https://picsum.photos/seed/venkateshwork/600/400",
		ImageHint: "person working computer",
		Achievements: []models.Achievement{
			{ID: "ach-1", IconName: "Award", Text: "Optimized packaging strategies, increasing taproom revenue by 20% for Allagash Brewing Company."},
			{ID: "ach-2", IconName: "Brain", Text: "Improved prediction of adverse events after cardiac surgery, outperforming national standards."},
			{ID: "ach-3", IconName: "Users", Text: "Led end-to-end AI development at Aosenuma, reducing operational costs by 30-40%."},
			{ID: "ach-4", IconName: "Lightbulb", Text: "Achieved 100% customer satisfaction by resolving complex COBOL/JCL/VSAM issues at Cognizant."},
		},
	}
}
